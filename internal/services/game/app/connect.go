package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	platformgrpc "github.com/louisbranch/npc-arena/internal/platform/grpc"
	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	grpcmeta "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/metadata"
	"google.golang.org/grpc"
)

// Connection is a battle simulator together with whatever backs it: a
// client connection to a game server or an in-process backend.
type Connection struct {
	battlegrpc.Simulator
	conn    *grpc.ClientConn
	backend *Backend
}

// Connect dials the game server at gameAddr. When gameAddr is empty it opens
// an in-process backend over the content store at contentPath instead.
func Connect(ctx context.Context, gameAddr, contentPath string) (*Connection, error) {
	gameAddr = strings.TrimSpace(gameAddr)
	if gameAddr == "" {
		backend, err := OpenBackend(ctx, contentPath)
		if err != nil {
			return nil, err
		}
		return &Connection{Simulator: backend, backend: backend}, nil
	}

	conn, err := DialGame(ctx, gameAddr)
	if err != nil {
		return nil, err
	}
	return &Connection{Simulator: battlegrpc.NewClient(conn), conn: conn}, nil
}

// DialGame connects to a game server and waits for its battle service to
// report SERVING.
func DialGame(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	opts := append(platformgrpc.DefaultClientDialOptions(),
		grpc.WithChainUnaryInterceptor(
			grpcmeta.UnaryClientInterceptor(),
			platformgrpc.DomainErrorUnaryClientInterceptor(),
		),
	)
	conn, err := platformgrpc.DialWithHealth(ctx, addr, battlegrpc.ServiceName, timeouts.GRPCDial, log.Printf, opts...)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageHealth {
				return nil, fmt.Errorf("game server at %s is not healthy: %w", addr, dialErr.Err)
			}
			return nil, fmt.Errorf("connect to game server at %s: %w", addr, dialErr.Err)
		}
		return nil, fmt.Errorf("connect to game server at %s: %w", addr, err)
	}
	return conn, nil
}

// Remote reports whether the connection talks to a game server.
func (c *Connection) Remote() bool {
	return c != nil && c.conn != nil
}

// ClientConn returns the gRPC connection, or nil for in-process backends.
func (c *Connection) ClientConn() *grpc.ClientConn {
	if c == nil {
		return nil
	}
	return c.conn
}

// Close releases the connection or backend.
func (c *Connection) Close() error {
	if c == nil {
		return nil
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return c.backend.Close()
}
