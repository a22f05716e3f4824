package server

import (
	"context"
	"path/filepath"
	"testing"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
)

func TestConnectLocal(t *testing.T) {
	conn, err := Connect(context.Background(), "", filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	if conn.Remote() {
		t.Fatal("expected in-process connection")
	}
	if conn.ClientConn() != nil {
		t.Fatal("expected no client conn")
	}
	npcs, err := conn.ListNPCs(context.Background(), "")
	if err != nil {
		t.Fatalf("list npcs: %v", err)
	}
	if len(npcs) != 6 {
		t.Fatalf("npcs = %d, want 6", len(npcs))
	}
}

func TestConnectRemoteMatchesLocal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	gameServer, err := New(ctx, "127.0.0.1:0", filepath.Join(dir, "server.db"))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	go func() { _ = gameServer.Serve(ctx) }()

	remote, err := Connect(context.Background(), gameServer.Addr(), "")
	if err != nil {
		t.Fatalf("connect remote: %v", err)
	}
	defer remote.Close()
	if !remote.Remote() {
		t.Fatal("expected remote connection")
	}

	local, err := Connect(context.Background(), "", filepath.Join(dir, "local.db"))
	if err != nil {
		t.Fatalf("connect local: %v", err)
	}
	defer local.Close()

	seed := int64(99)
	req := battle.NewRequest("mistcaller", "venomfang")
	req.Seed = &seed
	want, err := local.Simulate(context.Background(), req)
	if err != nil {
		t.Fatalf("local simulate: %v", err)
	}
	got, err := remote.Simulate(context.Background(), req)
	if err != nil {
		t.Fatalf("remote simulate: %v", err)
	}
	if got.Winner != want.Winner || got.Turns != want.Turns || len(got.Log) != len(want.Log) {
		t.Fatalf("remote result %+v differs from local %+v", got, want)
	}

	_, err = remote.ListNPCs(context.Background(), "level >")
	if code := apperrors.GetCode(err); code != apperrors.CodeFilterInvalid {
		t.Fatalf("code = %s, want %s", code, apperrors.CodeFilterInvalid)
	}
}

func TestConnectUnreachable(t *testing.T) {
	if _, err := Connect(context.Background(), "127.0.0.1:1", ""); err == nil {
		t.Fatal("expected dial error")
	}
}
