package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	battlecmd "github.com/louisbranch/npc-arena/internal/cmd/battle"
	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	"github.com/louisbranch/npc-arena/internal/platform/config"
)

func main() {
	cfg, err := battlecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	entrypoint.SetLogPrefix(entrypoint.ServiceBattle)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := battlecmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
