package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyName is returned when an account has no display name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyEmail is returned when an account has no email address.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyPassword is returned when neither a password nor a hash is present.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
