package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/phrazzld/signup-api/internal/store"
)

const componentName = "account_store"

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", componentName)),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create.
// Returns validation errors from the domain Account if data is invalid.
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.ForComponent(ctx, s.logger, componentName)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Name,
		domain.NormalizeEmail(account.Email),
		account.Password,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already registered",
				slog.String("account_id", account.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return store.NewStoreError("account", "create", "failed to insert account", MapError(err))
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()))
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
// The lookup is case-insensitive.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE LOWER(email) = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("account not found by email")
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by email",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("account", "get_by_email", "failed to query account", MapError(err))
	}

	return &account, nil
}

// WithTx implements store.AccountStore.WithTx.
// It returns a new store that runs its queries on tx.
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}
