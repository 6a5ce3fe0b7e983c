// Package main implements the entry point for the signup API server, which
// registers accounts and stores them in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/signup-api/internal/config"
	"github.com/phrazzld/signup-api/internal/platform/logger"
)

func main() {
	migrate := flag.String("migrate", "", "run database migrations and exit (up, down, status)")
	flag.Parse()

	if err := run(context.Background(), *migrate); err != nil {
		slog.Error("signup-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration and either applies migrations or serves HTTP
// until a shutdown signal arrives.
func run(ctx context.Context, migrateCommand string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", maskDatabaseURL(cfg.Database.URL))

	if migrateCommand != "" {
		return runMigrations(ctx, cfg.Database.URL, migrateCommand, log)
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
