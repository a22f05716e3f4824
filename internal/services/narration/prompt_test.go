package narration

import (
	"strings"
	"testing"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		contains []string
		code     apperrors.Code
	}{
		{
			name:     "defaults",
			req:      Request{Log: []string{"--- Turn 1 ---", "  ", "EmberMage used Flamethrower"}},
			contains: []string{"voice of a sportscaster", "Write in English", "--- Turn 1 ---\nEmberMage used Flamethrower"},
		},
		{
			name:     "style and locale",
			req:      Request{Log: []string{"Winner: WindBlade after 3 turns."}, Style: "bard", Locale: "pt-BR"},
			contains: []string{"voice of a bard", "Portuguese"},
		},
		{name: "empty log", req: Request{Log: []string{" "}}, code: apperrors.CodeInvalidArgument},
		{name: "bad locale", req: Request{Log: []string{"x"}, Locale: "not a locale!"}, code: apperrors.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildPrompt(tt.req)
			if tt.code != "" {
				if got := apperrors.GetCode(err); got != tt.code {
					t.Fatalf("code = %s, want %s", got, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("build prompt: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Fatalf("prompt %q missing %q", prompt, want)
				}
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"":   "English",
		"fr": "French",
		"de": "German",
	}
	for locale, want := range tests {
		got, err := LanguageName(locale)
		if err != nil {
			t.Fatalf("language name %q: %v", locale, err)
		}
		if got != want {
			t.Fatalf("language name %q = %q, want %q", locale, got, want)
		}
	}
}
