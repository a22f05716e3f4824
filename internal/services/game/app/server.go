package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	platformgrpc "github.com/louisbranch/npc-arena/internal/platform/grpc"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	grpcmeta "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/metadata"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Server hosts the battle gRPC service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	backend    *Backend
}

// New creates a game server listening on addr with content read from
// contentPath.
func New(ctx context.Context, addr, contentPath string) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	backend, err := OpenBackend(ctx, contentPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			platformgrpc.DomainErrorUnaryInterceptor(),
		),
	)
	battlegrpc.RegisterBattleServiceServer(grpcServer, battlegrpc.NewServer(backend))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(battlegrpc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		backend:    backend,
	}, nil
}

// Addr returns the listener address for the game server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a game server until the context ends.
func Run(ctx context.Context, addr, contentPath string) error {
	gameServer, err := New(ctx, addr, contentPath)
	if err != nil {
		return err
	}
	return gameServer.Serve(ctx)
}

// Serve starts the game server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeBackend()

	log.Printf("game server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		return handleErr(err)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeBackend() {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.Close(); err != nil {
		log.Printf("close content store: %v", err)
	}
}
