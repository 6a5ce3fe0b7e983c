package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a registered account as returned by the account-creation use case.
// Password holds the stored credential (a hash once persisted) and is never
// serialised.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddAccountInput is the validated subset of a signup request that is
// forwarded to account creation. The password confirmation never reaches it.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}

// AccountCreator creates accounts. Implementations may block on I/O and
// must be safe for concurrent use when shared between requests.
type AccountCreator interface {
	// Add creates an account from the given input and returns the created record.
	Add(ctx context.Context, input AddAccountInput) (*Account, error)
}

// EmailValidator reports whether an address is well formed.
// A non-nil error means the check itself failed, not that the email is invalid.
type EmailValidator interface {
	IsValid(ctx context.Context, email string) (bool, error)
}

// NewAccount creates a new Account with a fresh ID and timestamps.
// passwordHash must already be hashed; the email is normalised to lower case.
func NewAccount(name, email, passwordHash string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks that the account has the fields required for storage.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidID)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}
	if a.Email == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyEmail)
	}
	if a.Password == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyPassword)
	}
	return nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
