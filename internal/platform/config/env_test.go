package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int    `env:"TEST_PORT" envDefault:"123"`
	Level string `env:"TEST_LEVEL" envDefault:"50"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Level != "50" {
		t.Fatalf("expected default level 50, got %q", cfg.Level)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_PORT", "1")
	t.Setenv("NPC_ARENA_TEST_PORT", "9090")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected prefixed port 9090, got %d", cfg.Port)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("OTHER_TEST_LEVEL", "75")

	var cfg envTestConfig
	if err := ParseEnvWithPrefix(&cfg, "OTHER_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Level != "75" {
		t.Fatalf("expected level 75, got %q", cfg.Level)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NPC_ARENA_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
