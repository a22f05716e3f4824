package arena

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
	gameapp "github.com/louisbranch/npc-arena/internal/services/game/app"
	"github.com/louisbranch/npc-arena/internal/services/narration"
)

// Config configures the arena HTTP server.
type Config struct {
	HTTPAddr string
	// GameAddr is the game server address. Empty runs the engine in process.
	GameAddr      string
	ContentDBPath string
	Narration     narration.Config
}

// Server serves the arena routes on one listener.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	connection *gameapp.Connection
}

// New connects to the battle backend and binds the HTTP listener.
func New(ctx context.Context, cfg Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	connection, err := gameapp.Connect(ctx, cfg.GameAddr, cfg.ContentDBPath)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           NewHandler(connection, narration.New(cfg.Narration)),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		connection: connection,
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve handles requests until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		if err := s.connection.Close(); err != nil {
			log.Printf("arena: close backend: %v", err)
		}
	}()

	log.Printf("arena: listening at %s", s.Addr())
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("arena: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("serve HTTP: %w", err)
	}
}

// Run creates the server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
