// Package game parses game command flags and starts the battle gRPC service.
package game

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	server "github.com/louisbranch/npc-arena/internal/services/game/app"
)

// Config holds game command configuration.
type Config struct {
	Port          int    `env:"GAME_PORT" envDefault:"8082"`
	Addr          string `env:"GAME_LISTEN_ADDR"`
	ContentDBPath string `env:"CONTENT_DB_PATH" envDefault:"data/arena-content.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.ContentDBPath, "content-db", cfg.ContentDBPath, "Path to the sqlite content database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr returns the address the server should bind.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the battle gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return server.Run(ctx, cfg.ListenAddr(), cfg.ContentDBPath)
	})
}
