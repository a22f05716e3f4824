// Package catalogimporter validates NPC and move payloads and loads them
// into the sqlite content store.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	storagesqlite "github.com/louisbranch/npc-arena/internal/services/game/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "arena-content.db"),
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing npcs.json and moves.json")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	content, err := catalog.ReadContent(os.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	if _, err := content.Build(); err != nil {
		return fmt.Errorf("validate %s: %w", dir, err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d npc(s) and %d move(s)\n", len(content.NPCs.Items), len(content.Moves.Items))
		return err
	}

	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return errors.New("db-path is required")
	}
	if parent := filepath.Dir(dbPath); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := storagesqlite.OpenContent(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	record, err := store.ImportContent(ctx, content)
	if err != nil {
		return fmt.Errorf("import %s: %w", dir, err)
	}
	_, err = fmt.Fprintf(out, "imported %d npc(s) and %d move(s) into %s\n", record.NPCCount, record.MoveCount, dbPath)
	return err
}
