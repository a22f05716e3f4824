package battle

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	platformotel "github.com/louisbranch/npc-arena/internal/platform/otel"
	"github.com/louisbranch/npc-arena/internal/random"
	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/louisbranch/npc-arena/internal/services/game/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LocalClient runs battles on an in-process engine.
type LocalClient struct {
	engine  *battledomain.Engine
	content storage.ContentReader
}

// NewLocalClient creates a client over engine. content backs filtered NPC
// listings; without it only unfiltered listings from the engine's catalog
// are available.
func NewLocalClient(engine *battledomain.Engine, content storage.ContentReader) *LocalClient {
	return &LocalClient{engine: engine, content: content}
}

// Simulate validates req and runs it inside a span.
func (c *LocalClient) Simulate(ctx context.Context, req battledomain.Request) (battledomain.Result, error) {
	if err := ctx.Err(); err != nil {
		return battledomain.Result{}, err
	}
	if c == nil || c.engine == nil {
		return battledomain.Result{}, fmt.Errorf("battle engine is not configured")
	}
	if err := req.Validate(); err != nil {
		return battledomain.Result{}, err
	}

	_, span := platformotel.Tracer().Start(ctx, "battle.Simulate", trace.WithAttributes(
		attribute.String("battle.npc_a", req.NPCA),
		attribute.String("battle.npc_b", req.NPCB),
		attribute.Int("battle.level", req.Level),
		attribute.Int("battle.max_turns", req.MaxTurns),
		attribute.String("battle.rng", random.Algorithm),
	))
	defer span.End()

	result, err := c.engine.Simulate(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return battledomain.Result{}, err
	}
	span.SetAttributes(
		attribute.String("battle.winner", result.Winner),
		attribute.Int("battle.turns", result.Turns),
		attribute.Int64("battle.seed", result.Seed),
		attribute.String("battle.seed_source", string(result.SeedSource)),
	)
	return result, nil
}

// ListNPCs lists NPC templates, filtered through the content store.
func (c *LocalClient) ListNPCs(ctx context.Context, filter string) ([]catalog.NPCTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c == nil || c.engine == nil {
		return nil, fmt.Errorf("battle engine is not configured")
	}
	if c.content != nil {
		return c.content.ListNPCs(ctx, storage.NPCQuery{Filter: filter})
	}
	if strings.TrimSpace(filter) != "" {
		return nil, apperrors.New(apperrors.CodeFilterInvalid, "filtering requires a content store")
	}
	return c.engine.Catalog().NPCs(), nil
}
