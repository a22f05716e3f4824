package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	arenacmd "github.com/louisbranch/npc-arena/internal/cmd/arena"
	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
)

func main() {
	cfg, err := arenacmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	entrypoint.SetLogPrefix(entrypoint.ServiceArena)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := arenacmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
