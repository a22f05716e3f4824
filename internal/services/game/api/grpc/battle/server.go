package battle

import (
	"context"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server implements BattleService over a Simulator.
type Server struct {
	backend Simulator
}

var _ BattleServiceServer = (*Server)(nil)

// NewServer creates a Server delegating to backend.
func NewServer(backend Simulator) *Server {
	return &Server{backend: backend}
}

// Simulate runs one battle.
func (s *Server) Simulate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s == nil || s.backend == nil {
		return nil, apperrors.New(apperrors.CodeUnknown, "battle service is not configured")
	}
	req, err := decodeSimulateRequest(in)
	if err != nil {
		return nil, err
	}
	result, err := s.backend.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}
	return encodeResult(result)
}

// ListNpcs lists NPC templates matching an optional filter.
func (s *Server) ListNpcs(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s == nil || s.backend == nil {
		return nil, apperrors.New(apperrors.CodeUnknown, "battle service is not configured")
	}
	filter := ""
	if value, ok := present(in.GetFields(), "filter"); ok {
		str, isString := value.GetKind().(*structpb.Value_StringValue)
		if !isString {
			return nil, invalidField("filter", "filter must be a string")
		}
		filter = str.StringValue
	}
	npcs, err := s.backend.ListNPCs(ctx, filter)
	if err != nil {
		return nil, err
	}
	return encodeNPCs(npcs)
}
