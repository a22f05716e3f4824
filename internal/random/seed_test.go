package random

import (
	"testing"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

func TestResolveSeedKeepsClientSeed(t *testing.T) {
	seed := int64(123)
	got, source, err := ResolveSeed(&seed)
	if err != nil {
		t.Fatalf("resolve seed: %v", err)
	}
	if got != 123 || source != SeedSourceClient {
		t.Fatalf("got (%d, %s), want (123, CLIENT)", got, source)
	}
}

func TestResolveSeedGeneratesServerSeed(t *testing.T) {
	_, source, err := ResolveSeed(nil)
	if err != nil {
		t.Fatalf("resolve seed: %v", err)
	}
	if source != SeedSourceServer {
		t.Fatalf("source = %s, want SERVER", source)
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		code  apperrors.Code
	}{
		{name: "positive", input: "42", want: 42},
		{name: "negative", input: " -7 ", want: -7},
		{name: "max", input: "9223372036854775807", want: 9223372036854775807},
		{name: "overflow", input: "9223372036854775808", code: apperrors.CodeSeedOutOfRange},
		{name: "garbage", input: "forty-two", code: apperrors.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeed(tt.input)
			if tt.code != "" {
				if apperrors.GetCode(err) != tt.code {
					t.Fatalf("code = %s, want %s", apperrors.GetCode(err), tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse seed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("seed = %d, want %d", got, tt.want)
			}
		})
	}
}
