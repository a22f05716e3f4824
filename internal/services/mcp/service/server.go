package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	gameapp "github.com/louisbranch/npc-arena/internal/services/game/app"
	"github.com/louisbranch/npc-arena/internal/services/mcp/domain"
	"github.com/louisbranch/npc-arena/internal/services/narration"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	serverName    = "npc-arena MCP"
	serverVersion = "0.1.0"
	// DefaultHTTPAddr is the loopback address used by the HTTP transport.
	DefaultHTTPAddr = "localhost:8081"
	// healthInterval is how often a remote game connection is probed.
	healthInterval = 30 * time.Second
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for browser or remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// GameAddr is the game server address. Empty runs the engine in process.
	GameAddr      string
	ContentDBPath string
	Transport     TransportKind
	HTTPAddr      string
	// AllowedHosts extends the loopback hosts accepted by the HTTP transport.
	AllowedHosts []string
	Narration    narration.Config
}

func registerBattleTools(server *mcp.Server, sim battlegrpc.Simulator) {
	mcp.AddTool(server, domain.SimulateBattleTool(), domain.SimulateBattleHandler(sim))
	mcp.AddTool(server, domain.ListNPCsTool(), domain.ListNPCsHandler(sim))
}

func registerNarrationTools(server *mcp.Server, narrator narration.Narrator) {
	mcp.AddTool(server, domain.NarrateBattleTool(), domain.NarrateBattleHandler(narrator))
}

func registerNPCResources(server *mcp.Server, sim battlegrpc.Simulator) {
	server.AddResource(domain.NPCListResource(), domain.NPCListResourceHandler(sim))
	server.AddResourceTemplate(domain.NPCResourceTemplate(), domain.NPCResourceHandler(sim))
}

// Server hosts the MCP server.
type Server struct {
	mcpServer  *mcp.Server
	connection *gameapp.Connection
}

// New connects to the battle backend named by cfg and registers every tool
// and resource against it.
func New(ctx context.Context, cfg Config) (*Server, error) {
	connection, err := gameapp.Connect(ctx, cfg.GameAddr, cfg.ContentDBPath)
	if err != nil {
		return nil, err
	}
	server := newServer(connection, narration.New(cfg.Narration))
	server.connection = connection
	return server, nil
}

// newServer binds the tool and resource handlers once.
func newServer(sim battlegrpc.Simulator, narrator narration.Narrator) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	registerBattleTools(mcpServer, sim)
	registerNarrationTools(mcpServer, narrator)
	registerNPCResources(mcpServer, sim)
	return &Server{mcpServer: mcpServer}
}

// completionHandler answers completion requests with empty results.
func completionHandler(context.Context, *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	if server.connection.Remote() {
		healthCtx, healthCancel := context.WithCancel(ctx)
		defer healthCancel()
		go monitorHealth(healthCtx, server.connection.ClientConn())
	}

	if cfg.Transport == TransportHTTP {
		httpAddr := strings.TrimSpace(cfg.HTTPAddr)
		if httpAddr == "" {
			httpAddr = DefaultHTTPAddr
		}
		return NewHTTPTransport(httpAddr, server.mcpServer, cfg.AllowedHosts...).Start(ctx)
	}
	return server.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the MCP session until the transport or ctx ends.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}

// Close releases the battle backend.
func (s *Server) Close() error {
	if s == nil || s.connection == nil {
		return nil
	}
	err := s.connection.Close()
	s.connection = nil
	return err
}

// monitorHealth periodically checks the game connection and logs when it
// stops serving. Tool calls surface their own errors.
func monitorHealth(ctx context.Context, conn *grpc.ClientConn) {
	if conn == nil {
		return
	}
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	healthClient := grpc_health_v1.NewHealthClient(conn)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: battlegrpc.ServiceName})
			cancel()
			if err != nil {
				log.Printf("gRPC health check failed: %v", err)
			} else if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
				log.Printf("gRPC health check status: %s", response.GetStatus().String())
			}
		}
	}
}
