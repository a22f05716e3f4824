package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"content/001_npcs.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE npcs(key TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE npcs;"),
		},
		"content/002_moves.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE moves(id TEXT PRIMARY KEY);"),
		},
		"content/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	applied, err := ApplyMigrations(context.Background(), db, migrations, "content")
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	want := []string{"content/001_npcs.sql", "content/002_moves.sql"}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for _, table := range []string{"npcs", "moves"} {
		if !tableExists(t, db, table) {
			t.Fatalf("expected table %s", table)
		}
	}

	recorded, err := Applied(context.Background(), db)
	if err != nil {
		t.Fatalf("list applied: %v", err)
	}
	if !reflect.DeepEqual(recorded, want) {
		t.Fatalf("recorded = %v, want %v", recorded, want)
	}
}

func TestApplyMigrationsSkipsAlreadyApplied(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
	}

	if _, err := ApplyMigrations(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("apply initial migrations: %v", err)
	}
	applied, err := ApplyMigrations(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("re-apply migrations should be idempotent: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("expected nothing applied on replay, got %v", applied)
	}
}

func TestApplyMigrationsFailsOnBadSQL(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABL nope;")},
	}

	if _, err := ApplyMigrations(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("expected migration error")
	}
	recorded, err := Applied(context.Background(), db)
	if err != nil {
		t.Fatalf("list applied: %v", err)
	}
	if len(recorded) != 0 {
		t.Fatalf("failed migration must not be recorded, got %v", recorded)
	}
}

func TestApplyMigrationsRequiresInputs(t *testing.T) {
	if _, err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected error for nil db")
	}
	if _, err := ApplyMigrations(context.Background(), openTestDB(t), nil, ""); err == nil {
		t.Fatal("expected error for nil fs")
	}
}

func TestExtractUpMigration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(x);", want: "CREATE TABLE a(x);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(x);", want: "\nCREATE TABLE a(x);"},
		{name: "up and down", content: "-- +migrate Up\nA;\n-- +migrate Down\nB;", want: "\nA;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractUpMigration(tc.content); got != tc.want {
				t.Fatalf("ExtractUpMigration() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	if IsAlreadyExistsError(nil) {
		t.Fatal("nil is not an already-exists error")
	}
	if !IsAlreadyExistsError(errors.New("table npcs already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: speed")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("unexpected match")
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return count == 1
}
