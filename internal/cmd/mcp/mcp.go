// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"strings"

	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	"github.com/louisbranch/npc-arena/internal/services/mcp/service"
	"github.com/louisbranch/npc-arena/internal/services/narration"
)

// Config holds MCP command configuration.
type Config struct {
	GameAddr      string   `env:"GAME_ADDR"`
	HTTPAddr      string   `env:"MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport     string   `env:"MCP_TRANSPORT" envDefault:"stdio"`
	AllowedHosts  []string `env:"MCP_ALLOWED_HOSTS" envSeparator:","`
	ContentDBPath string   `env:"CONTENT_DB_PATH" envDefault:"data/arena-content.db"`
	Narration     narration.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GameAddr, "addr", cfg.GameAddr, "game server address (empty runs the engine in process)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.ContentDBPath, "content-db", cfg.ContentDBPath, "Path to the sqlite content database (in-process mode)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			GameAddr:      cfg.GameAddr,
			ContentDBPath: cfg.ContentDBPath,
			Transport:     service.TransportKind(strings.ToLower(strings.TrimSpace(cfg.Transport))),
			HTTPAddr:      cfg.HTTPAddr,
			AllowedHosts:  cfg.AllowedHosts,
			Narration:     cfg.Narration,
		})
	})
}
