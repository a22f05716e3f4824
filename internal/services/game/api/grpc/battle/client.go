package battle

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote BattleService.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client over conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Simulate runs a battle on the remote service.
func (c *Client) Simulate(ctx context.Context, req battledomain.Request) (battledomain.Result, error) {
	in, err := encodeSimulateRequest(req)
	if err != nil {
		return battledomain.Result{}, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, SimulateFullMethodName, in, out); err != nil {
		return battledomain.Result{}, apperrors.FromGRPCStatus(err)
	}
	return decodeResult(out)
}

// ListNPCs lists NPC templates on the remote service.
func (c *Client) ListNPCs(ctx context.Context, filter string) ([]catalog.NPCTemplate, error) {
	fields := map[string]*structpb.Value{}
	if strings.TrimSpace(filter) != "" {
		fields["filter"] = structpb.NewStringValue(filter)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ListNpcsFullMethodName, &structpb.Struct{Fields: fields}, out); err != nil {
		return nil, apperrors.FromGRPCStatus(err)
	}
	return decodeNPCs(out)
}
