package main

import (
	"context"
	"flag"
	"os"

	entrypoint "github.com/louisbranch/npc-arena/internal/platform/cmd"
	"github.com/louisbranch/npc-arena/internal/platform/config"
	catalogimporter "github.com/louisbranch/npc-arena/internal/tools/importer/content/catalog"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	entrypoint.SetLogPrefix(entrypoint.ServiceImporter)

	if err := catalogimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
