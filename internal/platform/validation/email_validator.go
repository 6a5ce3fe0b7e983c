// Package validation adapts go-playground/validator to the domain's
// validation contracts.
package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/signup-api/internal/domain"
)

// emailTag is the rule an address must satisfy. 254 is the longest address
// SMTP can carry.
const emailTag = "required,email,max=254"

// EmailValidatorAdapter implements domain.EmailValidator with the validator
// package's email rule.
type EmailValidatorAdapter struct {
	validate *validator.Validate
}

var _ domain.EmailValidator = (*EmailValidatorAdapter)(nil)

// NewEmailValidatorAdapter creates an EmailValidatorAdapter. A nil validate
// gets a fresh validator.New().
func NewEmailValidatorAdapter(validate *validator.Validate) *EmailValidatorAdapter {
	if validate == nil {
		validate = validator.New()
	}
	return &EmailValidatorAdapter{validate: validate}
}

// IsValid reports whether email is a well-formed address. A rule violation is
// a false result; any other validator failure is returned as an error.
func (a *EmailValidatorAdapter) IsValid(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := a.validate.VarCtx(ctx, email, emailTag)
	if err == nil {
		return true, nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return false, nil
	}
	return false, fmt.Errorf("email validation failed: %w", err)
}
