package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/api"
	"github.com/phrazzld/signup-api/internal/config"
	"github.com/phrazzld/signup-api/internal/platform/metrics"
	"github.com/phrazzld/signup-api/internal/platform/postgres"
	"github.com/phrazzld/signup-api/internal/platform/validation"
	"github.com/phrazzld/signup-api/internal/service"
	"github.com/phrazzld/signup-api/internal/service/auth"
	"github.com/phrazzld/signup-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared dependencies of the server so they can be
// wired once and closed together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry *prometheus.Registry
	metrics  *metrics.Collector

	accountStore     store.AccountStore
	accountService   *service.AccountService
	signupController api.Controller
}

// newApplication wires store, service and controller on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "signup"),
	)
	app.metrics = metrics.NewCollector(app.registry)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	app.accountService = service.NewAccountService(app.accountStore, hasher, db, logger)
	app.signupController = api.NewSignUpController(
		validation.NewEmailValidatorAdapter(nil),
		app.accountService,
		logger,
	)

	logger.Info("application initialized", "bcrypt_cost", hasher.Cost())
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
