package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	storagesqlite "github.com/louisbranch/npc-arena/internal/services/game/storage/sqlite"
)

// DefaultContentPath is where the content database lives unless configured.
var DefaultContentPath = filepath.Join("data", "arena-content.db")

// Backend is an in-process battle backend over the content store.
type Backend struct {
	*battlegrpc.LocalClient
	store *storagesqlite.Store
}

// OpenBackend opens the content store at path, seeding the bundled content
// into a fresh database, and builds an engine from it.
func OpenBackend(ctx context.Context, path string) (*Backend, error) {
	store, err := openContentStore(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := store.SeedDefaults(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	cat, err := store.LoadCatalog(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Printf("content: loaded %d npc(s) and %d move(s)", len(cat.NPCs()), len(cat.Moves()))

	return &Backend{
		LocalClient: battlegrpc.NewLocalClient(battle.NewEngine(cat), store),
		store:       store,
	}, nil
}

// Close releases the content store.
func (b *Backend) Close() error {
	if b == nil {
		return nil
	}
	return b.store.Close()
}

func openContentStore(ctx context.Context, path string) (*storagesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultContentPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := storagesqlite.OpenContent(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open content store: %w", err)
	}
	return store, nil
}
