package narration

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Request asks for a narration of one battle log.
type Request struct {
	Log    []string
	Style  string
	Locale string
}

// BuildPrompt renders the user prompt for req.
func BuildPrompt(req Request) (string, error) {
	lines := make([]string, 0, len(req.Log))
	for _, line := range req.Log {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", apperrors.WithMetadata(apperrors.CodeInvalidArgument, "battle_log is required", map[string]string{"Field": "battle_log"})
	}

	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = DefaultStyle
	}
	lang, err := LanguageName(req.Locale)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Narrate this NPC battle in the voice of a %s. Write in %s and keep it under 200 words.\n\n", style, lang)
	sb.WriteString("Battle log:\n")
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String(), nil
}

// LanguageName returns the English display name of a BCP 47 locale. An
// empty locale is English.
func LanguageName(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return display.English.Languages().Name(language.English), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf("invalid locale %q", locale), map[string]string{"Field": "locale"})
	}
	return display.English.Languages().Name(tag), nil
}
