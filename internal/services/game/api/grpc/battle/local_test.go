package battle

import (
	"context"
	"testing"

	"github.com/louisbranch/npc-arena/internal/random"
	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestLocalSimulateRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})

	req := battledomain.NewRequest("embermage", "windblade")
	seed := int64(123)
	req.Seed = &seed
	result, err := newLocalClient(t, false).Simulate(context.Background(), req)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Name() != "battle.Simulate" {
		t.Fatalf("spans = %v, want one battle.Simulate span", spans)
	}
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	tests := []struct {
		key  attribute.Key
		want attribute.Value
	}{
		{key: "battle.rng", want: attribute.StringValue(random.Algorithm)},
		{key: "battle.npc_a", want: attribute.StringValue("embermage")},
		{key: "battle.seed", want: attribute.Int64Value(123)},
		{key: "battle.seed_source", want: attribute.StringValue(string(random.SeedSourceClient))},
		{key: "battle.winner", want: attribute.StringValue(result.Winner)},
	}
	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			got, ok := attrs[tc.key]
			if !ok {
				t.Fatalf("missing attribute %s", tc.key)
			}
			if got != tc.want {
				t.Fatalf("%s = %v, want %v", tc.key, got.Emit(), tc.want.Emit())
			}
		})
	}
}
