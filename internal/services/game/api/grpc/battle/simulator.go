package battle

import (
	"context"

	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// Simulator runs battles and lists the NPCs they can use.
type Simulator interface {
	Simulate(ctx context.Context, req battledomain.Request) (battledomain.Result, error)
	ListNPCs(ctx context.Context, filter string) ([]catalog.NPCTemplate, error)
}

var (
	_ Simulator = (*Client)(nil)
	_ Simulator = (*LocalClient)(nil)
)
