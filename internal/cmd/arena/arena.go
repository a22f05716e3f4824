// Package arena parses arena command flags and starts the HTTP service.
package arena

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	"github.com/louisbranch/npc-arena/internal/services/arena"
	"github.com/louisbranch/npc-arena/internal/services/narration"
)

// Config holds arena command configuration.
type Config struct {
	HTTPAddr      string `env:"ARENA_HTTP_ADDR" envDefault:"localhost:8000"`
	GameAddr      string `env:"GAME_ADDR"`
	ContentDBPath string `env:"CONTENT_DB_PATH" envDefault:"data/arena-content.db"`
	Narration     narration.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GameAddr, "game-addr", cfg.GameAddr, "game server address (empty runs the engine in process)")
	fs.StringVar(&cfg.ContentDBPath, "content-db", cfg.ContentDBPath, "Path to the sqlite content database (in-process mode)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the arena HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceArena, func(ctx context.Context) error {
		return arena.Run(ctx, arena.Config{
			HTTPAddr:      cfg.HTTPAddr,
			GameAddr:      cfg.GameAddr,
			ContentDBPath: cfg.ContentDBPath,
			Narration:     cfg.Narration,
		})
	})
}
