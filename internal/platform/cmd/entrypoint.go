// Package cmd holds the pieces every npc-arena binary shares: env plus flag
// parsing, log prefixes, and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/louisbranch/npc-arena/internal/platform/config"
	"github.com/louisbranch/npc-arena/internal/platform/otel"
	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
)

// Service names. They prefix logs and name the telemetry resource.
const (
	ServiceArena    = "arena"
	ServiceBattle   = "battle"
	ServiceGame     = "game"
	ServiceImporter = "catalog-importer"
	ServiceMCP      = "mcp"
)

// ParseConfig fills cfg from NPC_ARENA_* environment variables.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses args into fs. Flags registered with env-derived defaults
// therefore win over the environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// SetLogPrefix tags standard log output with the service name.
func SetLogPrefix(service string) {
	log.SetPrefix("[" + strings.ToUpper(strings.TrimSpace(service)) + "] ")
}

// RunWithTelemetry installs the tracer provider for service, calls run and
// flushes spans before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, "npc-arena-"+service)
	if err != nil {
		return err
	}
	defer flushTelemetry(service, shutdown)
	return run(ctx)
}

func flushTelemetry(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s telemetry shutdown: %v", service, err)
	}
}
