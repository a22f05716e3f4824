// Package i18n renders user-facing error messages per locale.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// ResolveLocale returns the best supported locale tag for the requested one.
func ResolveLocale(locale string) string {
	return resolveTag(locale).String()
}

func resolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.English
	}
	return supportedTags[index]
}

// Format renders the message registered for code using metadata as template
// data. Unknown codes render as the code itself.
func Format(locale, code string, metadata map[string]string) string {
	printer := message.NewPrinter(resolveTag(locale))
	text := printer.Sprintf(code)
	if text == code || !strings.Contains(text, "{{") {
		return text
	}
	tmpl, err := template.New(code).Option("missingkey=zero").Parse(text)
	if err != nil {
		return text
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return text
	}
	return buf.String()
}
