// Package battle parses battle command flags and prints one simulation.
package battle

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	"github.com/louisbranch/npc-arena/internal/random"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	gameapp "github.com/louisbranch/npc-arena/internal/services/game/app"
	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// Config holds battle command configuration.
type Config struct {
	NPCA     string
	NPCB     string
	Level    int
	Seed     string
	MaxTurns int
	JSON     bool
	// GameAddr runs the battle on a game server instead of in process.
	GameAddr string `env:"GAME_ADDR"`
	// ContentDBPath reads NPCs from a content store instead of the bundled
	// catalog.
	ContentDBPath string `env:"CONTENT_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Level:    battledomain.DefaultLevel,
		MaxTurns: battledomain.DefaultMaxTurns,
	}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.NPCA, "a", "", "first NPC key")
	fs.StringVar(&cfg.NPCB, "b", "", "second NPC key")
	fs.IntVar(&cfg.Level, "level", cfg.Level, "level both NPCs are scaled to")
	fs.StringVar(&cfg.Seed, "seed", "", "seed for a reproducible battle (random when empty)")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn cap")
	fs.BoolVar(&cfg.JSON, "json", false, "print the full result as JSON")
	fs.StringVar(&cfg.GameAddr, "game-addr", cfg.GameAddr, "game server address (empty runs in process)")
	fs.StringVar(&cfg.ContentDBPath, "content-db", cfg.ContentDBPath, "sqlite content database (empty uses the bundled catalog)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.NPCA) == "" || strings.TrimSpace(cfg.NPCB) == "" {
		return Config{}, errors.New("both -a and -b are required")
	}
	return cfg, nil
}

// Request builds the simulation request from the flags.
func (c Config) Request() (battledomain.Request, error) {
	req := battledomain.NewRequest(c.NPCA, c.NPCB)
	req.Level = c.Level
	req.MaxTurns = c.MaxTurns
	if seed := strings.TrimSpace(c.Seed); seed != "" {
		value, err := random.ParseSeed(seed)
		if err != nil {
			return battledomain.Request{}, err
		}
		req.Seed = &value
	}
	return req, nil
}

// Run simulates one battle and writes it to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBattle, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	req, err := cfg.Request()
	if err != nil {
		return err
	}
	sim, closeSim, err := openSimulator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSim()

	result, err := sim.Simulate(ctx, req)
	if err != nil {
		return err
	}
	return writeResult(out, result, cfg.JSON)
}

func openSimulator(ctx context.Context, cfg Config) (battlegrpc.Simulator, func(), error) {
	if strings.TrimSpace(cfg.GameAddr) == "" && strings.TrimSpace(cfg.ContentDBPath) == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, nil, err
		}
		return battlegrpc.NewLocalClient(battledomain.NewEngine(cat), nil), func() {}, nil
	}
	conn, err := gameapp.Connect(ctx, cfg.GameAddr, cfg.ContentDBPath)
	if err != nil {
		return nil, nil, err
	}
	return conn, func() { _ = conn.Close() }, nil
}

func writeResult(out io.Writer, result battledomain.Result, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	for _, line := range result.Log {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "\nseed: %d (%s)\n", result.Seed, result.SeedSource)
	return err
}
