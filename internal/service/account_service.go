package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/phrazzld/signup-api/internal/redact"
	"github.com/phrazzld/signup-api/internal/service/auth"
	"github.com/phrazzld/signup-api/internal/store"
)

// AccountService creates accounts. It implements domain.AccountCreator.
type AccountService struct {
	accountStore store.AccountStore
	hasher       auth.PasswordHasher
	db           *sql.DB
	logger       *slog.Logger
}

var _ domain.AccountCreator = (*AccountService)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountStore store.AccountStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		accountStore: accountStore,
		hasher:       hasher,
		db:           db,
		logger:       logger.With("component", "account_service"),
	}
}

// Add hashes the password, builds the account and persists it in a single
// transaction. The returned account carries the password hash.
// A taken email returns an error matching store.ErrEmailExists.
func (s *AccountService) Add(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error) {
	log := logger.ForComponent(ctx, s.logger, "account_service")

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error("failed to hash password",
			slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	account, err := domain.NewAccount(input.Name, input.Email, hash)
	if err != nil {
		log.Debug("rejected invalid account data",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.accountStore.WithTx(tx)

		_, err := txStore.GetByEmail(ctx, account.Email)
		switch {
		case err == nil:
			return store.ErrEmailExists
		case !store.IsNotFoundError(err):
			return fmt.Errorf("failed to check existing account: %w", err)
		}

		return txStore.Create(ctx, account)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("attempted to create account with existing email")
		} else {
			log.Error("failed to save account",
				slog.String("error", redact.Error(err)))
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("account created",
		slog.String("account_id", account.ID.String()))

	return account, nil
}
