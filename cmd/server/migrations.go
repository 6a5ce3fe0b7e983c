package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// migrationTableName is the goose version table.
const migrationTableName = "schema_migrations"

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does not exit; the error reaches main
// through the goose call's return value.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// runMigrations applies the embedded migrations with goose.
// Supported commands are up, down and status.
func runMigrations(ctx context.Context, dbURL, command string, logger *slog.Logger) error {
	run, err := migrationCommand(command)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close migration connection", "error", closeErr)
		}
	}()

	goose.SetLogger(&slogGooseLogger{logger: logger.With("component", "migrations")})
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	logger.Info("running migrations",
		"command", command,
		"host", extractHostFromURL(dbURL))

	if err := run(ctx, db, "."); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migrations finished", "command", command)
	return nil
}

// migrationCommand resolves a -migrate argument to its goose function.
func migrationCommand(command string) (func(context.Context, *sql.DB, string) error, error) {
	switch command {
	case "up":
		return func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.UpContext(ctx, db, dir)
		}, nil
	case "down":
		return func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.DownContext(ctx, db, dir)
		}, nil
	case "status":
		return func(ctx context.Context, db *sql.DB, dir string) error {
			return goose.StatusContext(ctx, db, dir)
		}, nil
	default:
		return nil, fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
}
