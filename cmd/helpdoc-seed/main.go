// Package main prepares a helpdoc database: it loads configuration, runs
// pending migrations, and in development seeds the content repository with
// example items. Safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"helpdoc/internal/cache"
	"helpdoc/internal/config"
	"helpdoc/internal/database"
)

func main() {
	// Structured logger — text output, this is an operator-facing tool.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "env", cfg.Env, "db", cfg.DBName)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Verify the preview cache is reachable and drop stale entries, so a
	// fresh seed never shows previews of the previous database contents.
	// The cache is optional: a missing Valkey only costs render time.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey not reachable, preview cache left as-is", "error", err)
	} else {
		defer valkeyClient.Close()
		previews := cache.NewPreviewCache(valkeyClient, cache.DefaultPreviewTTL)
		previews.InvalidateAll(context.Background())
	}

	slog.Info("database ready", "env", cfg.Env)
}
