package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/npc-arena/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/npc-arena/internal/services/game/storage"
	"github.com/louisbranch/npc-arena/internal/services/game/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var _ storage.ContentStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store provides a SQLite-backed content store.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// OpenContent opens the content database at path, creating it and applying
// migrations as needed.
func OpenContent(ctx context.Context, path string) (*Store, error) {
	return openStore(ctx, path, migrations.ContentFS, migrations.ContentRoot)
}

// Close closes the underlying SQLite database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func openStore(ctx context.Context, path string, migrationFS fs.FS, migrationRoot string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	applied, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrationFS, migrationRoot)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	for _, name := range applied {
		log.Printf("content store: applied migration %s", name)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}
