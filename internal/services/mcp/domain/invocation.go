package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/npc-arena/internal/platform/id"
	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
	grpcmeta "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/metadata"
)

// callTimeout caps a single backend call from a tool or resource handler.
var callTimeout = timeouts.GRPCRequest

// NewInvocationID generates an identifier for one tool invocation.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// NewOutgoingContext tags ctx with a fresh request ID and the invocation ID
// so remote calls can be correlated with the tool call that made them.
func NewOutgoingContext(ctx context.Context, invocationID string) (context.Context, error) {
	requestID, err := id.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}
	ctx = grpcmeta.WithRequestID(ctx, requestID)
	if invocationID != "" {
		ctx = grpcmeta.WithInvocationID(ctx, invocationID)
	}
	return grpcmeta.OutgoingContext(ctx), nil
}
