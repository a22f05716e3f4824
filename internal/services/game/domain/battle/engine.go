package battle

import (
	"errors"
	"fmt"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/louisbranch/npc-arena/internal/random"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// Request defaults.
const (
	DefaultLevel    = 50
	DefaultMaxTurns = 200
	// MaxTurnsLimit bounds caller-supplied turn caps at service boundaries.
	MaxTurnsLimit = 10000
)

// Request describes one simulation.
type Request struct {
	NPCA     string
	NPCB     string
	Level    int
	Seed     *int64
	MaxTurns int
}

// NewRequest returns a request for a versus b with default level and cap.
func NewRequest(a, b string) Request {
	return Request{
		NPCA:     a,
		NPCB:     b,
		Level:    DefaultLevel,
		MaxTurns: DefaultMaxTurns,
	}
}

// Validate checks the bounds services enforce before simulating. Unknown
// NPC keys are reported by Simulate, not here.
func (r Request) Validate() error {
	if r.MaxTurns < 0 || r.MaxTurns > MaxTurnsLimit {
		return apperrors.WithMetadata(
			apperrors.CodeInvalidArgument,
			fmt.Sprintf("max_turns must be within [0, %d]", MaxTurnsLimit),
			map[string]string{"Field": "max_turns"},
		)
	}
	return nil
}

// SeedFunc resolves the seed for a run.
type SeedFunc func(seed *int64) (int64, random.SeedSource, error)

// Engine runs simulations against one catalog. It is safe for concurrent
// use: each Simulate call owns its combatants and generator.
type Engine struct {
	catalog *catalog.Catalog
	seeds   SeedFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeedFunc replaces how missing seeds are generated.
func WithSeedFunc(fn SeedFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.seeds = fn
		}
	}
}

// NewEngine creates an engine reading from c.
func NewEngine(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: c, seeds: random.ResolveSeed}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Simulate runs one battle to completion. Unknown NPC keys fail before any
// turn executes; no partial result is returned on error.
func (e *Engine) Simulate(req Request) (Result, error) {
	if e == nil || e.catalog == nil {
		return Result{}, errors.New("battle engine is not configured")
	}

	a, err := NewCombatant(e.catalog, req.NPCA, req.Level)
	if err != nil {
		return Result{}, err
	}
	b, err := NewCombatant(e.catalog, req.NPCB, req.Level)
	if err != nil {
		return Result{}, err
	}

	seed, source, err := e.seeds(req.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("resolve seed: %w", err)
	}

	r := newResolver(e.catalog, random.New(seed), &a, &b)
	r.logf("Battle start: %s (HP %d) vs %s (HP %d), Level %d", a.Name, a.HP, b.Name, b.HP, req.Level)
	turns := r.run(req.MaxTurns)

	winner := decideWinner(&a, &b)
	r.logf("Winner: %s after %d turns.", winner.Name, turns)

	return Result{
		Winner:     winner.Name,
		Turns:      turns,
		Log:        r.log,
		Actions:    r.actions,
		Seed:       seed,
		SeedSource: source,
		Combatants: []Snapshot{a.Snapshot(), b.Snapshot()},
	}, nil
}

// decideWinner returns A while A has hp, otherwise B. This declares A the
// winner when both survive the turn cap, and B when both fall together.
func decideWinner(a, b *Combatant) *Combatant {
	if a.Alive() {
		return a
	}
	return b
}
