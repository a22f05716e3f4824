package catalogimporter

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	storagesqlite "github.com/louisbranch/npc-arena/internal/services/game/storage/sqlite"
)

const testMoves = `{
  "catalog_id": "test",
  "version": "v1",
  "source": "tests",
  "items": [
    {"id": "slash", "name": "Slash", "category": "Physical", "power": 70},
    {"id": "spark", "name": "Spark", "category": "Special", "power": 50, "stun_chance": 0.2}
  ]
}`

const testNPCs = `{
  "catalog_id": "test",
  "version": "v1",
  "source": "tests",
  "items": [
    {"key": "duelist", "name": "Duelist", "level": 50,
     "stats": {"hp": 80, "attack": 90, "defense": 60, "sp_attack": 40, "sp_defense": 60, "speed": 100},
     "moves": ["slash", "spark"]}
  ]
}`

func writeContentDir(t *testing.T, npcs, moves string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "npcs.json"), []byte(npcs), 0o644); err != nil {
		t.Fatalf("write npcs.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "moves.json"), []byte(moves), 0o644); err != nil {
		t.Fatalf("write moves.json: %v", err)
	}
	return dir
}

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-dir", "content", "-dry-run"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "content" || !cfg.DryRun {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.DBPath != filepath.Join("data", "arena-content.db") {
		t.Fatalf("db path = %q", cfg.DBPath)
	}

	fs = flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error when dir is missing")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := writeContentDir(t, testNPCs, testMoves)
	dbPath := filepath.Join(t.TempDir(), "content.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: dir, DBPath: dbPath, DryRun: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "validated 1 npc(s) and 2 move(s)\n" {
		t.Fatalf("output = %q", got)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("dry run created database: %v", err)
	}
}

func TestRunImports(t *testing.T) {
	dir := writeContentDir(t, testNPCs, testMoves)
	dbPath := filepath.Join(t.TempDir(), "nested", "content.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: dir, DBPath: dbPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "imported 1 npc(s) and 2 move(s) into " + dbPath + "\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}

	store, err := storagesqlite.OpenContent(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	npc, err := store.GetNPC(context.Background(), "duelist")
	if err != nil {
		t.Fatalf("get npc: %v", err)
	}
	if npc.Stats.Speed != 100 || len(npc.Moves) != 2 {
		t.Fatalf("npc = %+v", npc)
	}
	record, err := store.LastImport(context.Background())
	if err != nil {
		t.Fatalf("last import: %v", err)
	}
	if record.CatalogID != "test" || record.NPCCount != 1 || record.MoveCount != 2 {
		t.Fatalf("record = %+v", record)
	}
}

func TestRunRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		npcs    string
		moves   string
		wantErr string
	}{
		{
			name:    "unknown move",
			npcs:    strings.Replace(testNPCs, `"spark"]`, `"thunder"]`, 1),
			moves:   testMoves,
			wantErr: "validate",
		},
		{
			name:    "catalog mismatch",
			npcs:    strings.Replace(testNPCs, `"catalog_id": "test"`, `"catalog_id": "other"`, 1),
			moves:   testMoves,
			wantErr: "catalog_id mismatch",
		},
		{
			name:    "unsupported version",
			npcs:    strings.Replace(testNPCs, `"version": "v1"`, `"version": "v2"`, 1),
			moves:   testMoves,
			wantErr: "unsupported version",
		},
		{
			name:    "unknown field",
			npcs:    testNPCs,
			moves:   strings.Replace(testMoves, `"power": 70`, `"power": 70, "accuracy": 90`, 1),
			wantErr: "decode moves.json",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeContentDir(t, tc.npcs, tc.moves)
			err := Run(context.Background(), Config{Dir: dir, DBPath: filepath.Join(t.TempDir(), "content.db")}, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestRunMissingDir(t *testing.T) {
	if err := Run(context.Background(), Config{Dir: filepath.Join(t.TempDir(), "missing")}, nil); err == nil {
		t.Fatal("expected error for missing dir")
	}
}
