// Package seed parses seed command flags and loads a campaign fixture into
// the store.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	chronicleseed "github.com/emberlight/chronicle/internal/chronicle/seed"
	"github.com/emberlight/chronicle/internal/chronicle/storage/sqlite"
	entrypoint "github.com/emberlight/chronicle/internal/platform/cmd"
)

// Config holds seed command configuration.
type Config struct {
	DBPath      string `env:"CHRONICLE_DB_PATH" envDefault:"chronicle.db"`
	FixturePath string `env:"CHRONICLE_FIXTURE_PATH" envDefault:"data/campaign.yaml"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.FixturePath, "fixture", cfg.FixturePath, "Path to the campaign fixture YAML")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the fixture and writes it into the store.
func Run(ctx context.Context, cfg Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fixture, err := chronicleseed.Load(cfg.FixturePath)
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	result, err := chronicleseed.Apply(ctx, store, fixture)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "campaign seeded",
		"campaign_id", result.CampaignID,
		"characters", result.Characters,
		"aliases", result.Aliases,
		"sessions", result.Sessions,
	)
	return nil
}
