package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/signup-api/internal/domain"
)

// MockAccountCreator implements domain.AccountCreator for testing
type MockAccountCreator struct {
	// AddFn allows for custom creation logic in tests
	AddFn func(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error)

	// Account is returned by the default implementation when set
	Account *domain.Account
	// Err is returned by the default implementation when set
	Err error

	mu    sync.Mutex
	calls []domain.AddAccountInput
}

// NewMockAccountCreator creates a creator that echoes its input back as an account
func NewMockAccountCreator() *MockAccountCreator {
	return &MockAccountCreator{}
}

// Add implements the domain.AccountCreator interface
func (m *MockAccountCreator) Add(ctx context.Context, input domain.AddAccountInput) (*domain.Account, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.AddFn != nil {
		return m.AddFn(ctx, input)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Account != nil {
		return m.Account, nil
	}
	return &domain.Account{
		ID:       uuid.New(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}, nil
}

// Calls returns the inputs Add was called with, in order
func (m *MockAccountCreator) Calls() []domain.AddAccountInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AddAccountInput(nil), m.calls...)
}
