package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/louisbranch/npc-arena/internal/services/game/storage"
)

// LoadCatalog builds a validated catalog from everything in the store.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	moves, err := s.ListMoves(ctx)
	if err != nil {
		return nil, err
	}
	npcs, err := s.ListNPCs(ctx, storage.NPCQuery{})
	if err != nil {
		return nil, err
	}
	return catalog.New(npcs, moves)
}

// SeedDefaults imports the bundled content when the store has never been
// imported into. It reports whether an import happened.
func (s *Store) SeedDefaults(ctx context.Context) (bool, error) {
	_, err := s.LastImport(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	content, err := catalog.DefaultContent()
	if err != nil {
		return false, fmt.Errorf("read default content: %w", err)
	}
	record, err := s.ImportContent(ctx, content)
	if err != nil {
		return false, fmt.Errorf("seed default content: %w", err)
	}
	log.Printf("content store: seeded %d npc(s) and %d move(s) from %s %s", record.NPCCount, record.MoveCount, record.CatalogID, record.Version)
	return true, nil
}
