package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr string `env:"CHRONICLE_TEST_ADDR" envDefault:":9090"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected default addr :9090, got %q", cfg.Addr)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHRONICLE_TEST_ADDR", ":7001")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":7001" {
		t.Fatalf("expected addr :7001, got %q", cfg.Addr)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg struct {
		TTL int `env:"CHRONICLE_TEST_TTL"`
	}
	t.Setenv("CHRONICLE_TEST_TTL", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
