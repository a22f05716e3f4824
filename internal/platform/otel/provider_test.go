package otel

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("NPC_ARENA_OTEL_ENDPOINT", "")
	t.Setenv("NPC_ARENA_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("NPC_ARENA_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("NPC_ARENA_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	t.Setenv("NPC_ARENA_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("NPC_ARENA_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("NPC_ARENA_OTEL_SAMPLE_RATIO", "lots")

	if _, err := Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: sdktrace.AlwaysSample().Description()},
		{ratio: 2, want: sdktrace.AlwaysSample().Description()},
		{ratio: 0, want: sdktrace.NeverSample().Description()},
		{ratio: 0.5, want: sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.5)).Description()},
	}
	for _, tc := range tests {
		if got := sampler(tc.ratio).Description(); got != tc.want {
			t.Errorf("sampler(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
}
