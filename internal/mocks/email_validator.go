package mocks

import (
	"context"
	"sync"
)

// MockEmailValidator implements domain.EmailValidator for testing
type MockEmailValidator struct {
	// IsValidFn allows for custom validation logic in tests
	IsValidFn func(ctx context.Context, email string) (bool, error)

	// Invalid makes the default implementation reject every address
	Invalid bool

	mu    sync.Mutex
	calls []string
}

// NewMockEmailValidator creates a validator that accepts every address
func NewMockEmailValidator() *MockEmailValidator {
	return &MockEmailValidator{}
}

// IsValid implements the domain.EmailValidator interface
func (m *MockEmailValidator) IsValid(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, email)
	m.mu.Unlock()

	if m.IsValidFn != nil {
		return m.IsValidFn(ctx, email)
	}
	return !m.Invalid, nil
}

// Calls returns the emails IsValid was called with, in order
func (m *MockEmailValidator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
