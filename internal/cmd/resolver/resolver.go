// Package resolver parses resolver command flags and starts the resolution
// HTTP service.
package resolver

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emberlight/chronicle/internal/chronicle/api/httpapi"
	"github.com/emberlight/chronicle/internal/chronicle/app"
	"github.com/emberlight/chronicle/internal/chronicle/storage/sqlite"
	entrypoint "github.com/emberlight/chronicle/internal/platform/cmd"
)

// Config holds resolver command configuration.
type Config struct {
	Addr        string        `env:"CHRONICLE_ADDR" envDefault:":8080"`
	DBPath      string        `env:"CHRONICLE_DB_PATH" envDefault:"chronicle.db"`
	SnapshotTTL time.Duration `env:"CHRONICLE_SNAPSHOT_TTL" envDefault:"30s"`
	Debug       bool          `env:"CHRONICLE_DEBUG"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The resolver listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.DurationVar(&cfg.SnapshotTTL, "snapshot-ttl", cfg.SnapshotTTL, "TTL for cached campaign snapshots (0 disables)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the resolution HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceResolver, func(ctx context.Context) error {
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			_ = store.Close()
		}()

		service := app.NewService(store, app.Options{
			SnapshotTTL: cfg.SnapshotTTL,
			Logger:      logger,
		})

		logger.InfoContext(ctx, "resolver listening", "addr", cfg.Addr, "db", cfg.DBPath)
		return httpapi.Serve(ctx, cfg.Addr, httpapi.NewMux(service, logger))
	})
}
