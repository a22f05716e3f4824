package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

var (
	// ErrNPCNotFound matches, via errors.Is, any unknown-NPC lookup error.
	ErrNPCNotFound = apperrors.New(apperrors.CodeNPCNotFound, "npc not found")
	// ErrMoveNotFound matches, via errors.Is, any unknown-move lookup error.
	ErrMoveNotFound = apperrors.New(apperrors.CodeMoveNotFound, "move not found")
)

// IsNotFound reports whether err is an unknown NPC or move lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNPCNotFound) || errors.Is(err, ErrMoveNotFound)
}

// Catalog is a validated, read-only set of NPC templates and moves.
type Catalog struct {
	npcs  map[string]NPCTemplate
	moves map[string]MoveDefinition
	keys  []string
}

// NormalizeKey lowercases and trims a lookup key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// New validates npcs and moves and builds a catalog from them. Keys and
// move identifiers are stored normalized, and an NPC without a level gets
// DefaultBaseLevel.
func New(npcs []NPCTemplate, moves []MoveDefinition) (*Catalog, error) {
	c := &Catalog{
		npcs:  make(map[string]NPCTemplate, len(npcs)),
		moves: make(map[string]MoveDefinition, len(moves)),
	}

	for i, move := range moves {
		move.ID = NormalizeKey(move.ID)
		if err := validateMove(move); err != nil {
			return nil, invalid(fmt.Sprintf("moves[%d]", i), err)
		}
		if _, exists := c.moves[move.ID]; exists {
			return nil, invalid(fmt.Sprintf("moves[%d]", i), fmt.Errorf("duplicate move %q", move.ID))
		}
		c.moves[move.ID] = move
	}

	for i, npc := range npcs {
		npc.Key = NormalizeKey(npc.Key)
		npc.Name = strings.TrimSpace(npc.Name)
		if npc.Level == 0 {
			npc.Level = DefaultBaseLevel
		}
		normalized := make([]string, len(npc.Moves))
		for j, id := range npc.Moves {
			normalized[j] = NormalizeKey(id)
		}
		npc.Moves = normalized
		if err := c.validateNPC(npc); err != nil {
			return nil, invalid(fmt.Sprintf("npcs[%d]", i), err)
		}
		if _, exists := c.npcs[npc.Key]; exists {
			return nil, invalid(fmt.Sprintf("npcs[%d]", i), fmt.Errorf("duplicate npc %q", npc.Key))
		}
		c.npcs[npc.Key] = npc
		c.keys = append(c.keys, npc.Key)
	}
	sort.Strings(c.keys)

	return c, nil
}

// LookupNPC returns the template registered under key.
func (c *Catalog) LookupNPC(key string) (NPCTemplate, error) {
	normalized := NormalizeKey(key)
	if c != nil {
		if npc, ok := c.npcs[normalized]; ok {
			npc.Moves = append([]string(nil), npc.Moves...)
			return npc, nil
		}
	}
	return NPCTemplate{}, apperrors.WithMetadata(
		apperrors.CodeNPCNotFound,
		fmt.Sprintf("npc not found: %s", normalized),
		map[string]string{"Key": normalized},
	)
}

// LookupMove returns the move registered under id.
func (c *Catalog) LookupMove(id string) (MoveDefinition, error) {
	normalized := NormalizeKey(id)
	if c != nil {
		if move, ok := c.moves[normalized]; ok {
			return move, nil
		}
	}
	return MoveDefinition{}, apperrors.WithMetadata(
		apperrors.CodeMoveNotFound,
		fmt.Sprintf("move not found: %s", normalized),
		map[string]string{"Key": normalized},
	)
}

// NPCs returns every template ordered by key.
func (c *Catalog) NPCs() []NPCTemplate {
	if c == nil {
		return nil
	}
	out := make([]NPCTemplate, 0, len(c.keys))
	for _, key := range c.keys {
		npc := c.npcs[key]
		npc.Moves = append([]string(nil), npc.Moves...)
		out = append(out, npc)
	}
	return out
}

// Moves returns every move definition ordered by id.
func (c *Catalog) Moves() []MoveDefinition {
	if c == nil {
		return nil
	}
	out := make([]MoveDefinition, 0, len(c.moves))
	for _, move := range c.moves {
		out = append(out, move)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) validateNPC(npc NPCTemplate) error {
	if npc.Key == "" {
		return errors.New("key is required")
	}
	if npc.Name == "" {
		return fmt.Errorf("npc %q: name is required", npc.Key)
	}
	if npc.Level < 0 {
		return fmt.Errorf("npc %q: level must be positive", npc.Key)
	}
	if len(npc.Moves) == 0 {
		return fmt.Errorf("npc %q: at least one move is required", npc.Key)
	}
	for _, id := range npc.Moves {
		if _, ok := c.moves[id]; !ok {
			return fmt.Errorf("npc %q: unknown move %q", npc.Key, id)
		}
	}
	return nil
}

func validateMove(move MoveDefinition) error {
	if move.ID == "" {
		return errors.New("id is required")
	}
	if !move.Category.Valid() {
		return fmt.Errorf("move %q: invalid category %q", move.ID, move.Category)
	}
	if move.Power < 0 {
		return fmt.Errorf("move %q: power must be non-negative", move.ID)
	}
	chances := []struct {
		name  string
		value float64
	}{
		{"burn_chance", move.BurnChance},
		{"poison_chance", move.PoisonChance},
		{"stun_chance", move.StunChance},
	}
	for _, chance := range chances {
		if chance.value < 0 || chance.value > 1 {
			return fmt.Errorf("move %q: %s must be within [0, 1]", move.ID, chance.name)
		}
	}
	return nil
}

func invalid(path string, err error) error {
	return apperrors.Wrap(apperrors.CodeCatalogInvalid, fmt.Sprintf("invalid catalog %s: %v", path, err), err)
}
