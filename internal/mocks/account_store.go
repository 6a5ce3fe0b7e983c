package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
// Accounts are kept in memory, keyed by email.
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, account *domain.Account) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)

	// CreateError is returned by the default Create when set
	CreateError error

	// WithTxCalls counts how many times WithTx was called
	WithTxCalls int

	mu       sync.Mutex
	accounts map[string]*domain.Account
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Email]; exists {
		return store.ErrEmailExists
	}
	m.accounts[account.Email] = account
	return nil
}

// GetByEmail implements the AccountStore interface
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[domain.NormalizeEmail(email)]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// WithTx implements the AccountStore interface; the mock shares its state
// with the returned store.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}
