package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrAccountNotFound", err: ErrAccountNotFound, expected: true},
		{
			name:     "wrapped ErrAccountNotFound",
			err:      fmt.Errorf("failed to find account: %w", ErrAccountNotFound),
			expected: true,
		},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: true},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: true},
		{
			name:     "wrapped ErrEmailExists",
			err:      fmt.Errorf("failed to create account: %w", ErrEmailExists),
			expected: true,
		},
		{name: "ErrAccountNotFound", err: ErrAccountNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	baseErr := errors.New("connection reset")

	err := NewStoreError("account", "create", "insert failed", baseErr)
	assert.Equal(t, "create operation on account failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, baseErr)

	noCause := NewStoreError("account", "get", "missing", nil)
	assert.Equal(t, "get operation on account failed: missing", noCause.Error())
	assert.Nil(t, noCause.Unwrap())
}
