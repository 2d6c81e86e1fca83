package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathan/portfolio-terminal/internal/config"
	"github.com/jonathan/portfolio-terminal/internal/content"
	"github.com/jonathan/portfolio-terminal/internal/db"
)

// resolveConfig layers flags over the config file over the environment over
// the built-in defaults.
func resolveConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileCfg
	}

	if contentPath != "" {
		cfg.Content = contentPath
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	merged := cfg.MergeWithDefaults(config.FromEnv())
	merged = merged.MergeWithDefaults(config.Defaults())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadStore opens the configured content source. A content file wins over a
// database; with neither, the embedded portfolio is used.
func loadStore(ctx context.Context, cfg config.Config) (*content.Store, error) {
	switch {
	case cfg.Content != "":
		slog.Debug("loading content file", "path", cfg.Content)
		return content.LoadFile(cfg.Content)

	case cfg.DatabaseURL != "":
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, &content.StartupDataError{Source: "postgres", Message: "failed to connect", Cause: err}
		}
		defer database.Close()

		p, err := database.LoadPortfolio(ctx)
		if err != nil {
			return nil, &content.StartupDataError{Source: "postgres", Message: "failed to load portfolio", Cause: err}
		}
		return content.New(p, "postgres")

	default:
		store, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded portfolio: %w", err)
		}
		return store, nil
	}
}
