package mocks

import "errors"

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// ShouldFail makes the default implementation return an error
	ShouldFail bool

	// HashCalledWith stores the last password passed to Hash
	HashCalledWith string
	// HashCallCount tracks how many times Hash was called
	HashCallCount int
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalledWith = password
	m.HashCallCount++

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.ShouldFail {
		return "", errors.New("hashing failed")
	}
	return "hashed:" + password, nil
}
