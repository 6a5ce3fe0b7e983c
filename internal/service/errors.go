package service

import "errors"

// Service errors callers may check for with errors.Is. Store errors such as
// store.ErrEmailExists pass through wrapped, so they match as well.
var (
	// ErrInvalidAccount indicates the input could not form a valid account.
	ErrInvalidAccount = errors.New("invalid account data")

	// ErrPasswordHashing indicates the password could not be hashed.
	ErrPasswordHashing = errors.New("password hashing failed")
)
