// Package auth provides password hashing for account credentials.
//
// BcryptHasher is the production implementation; tests substitute
// mocks.MockPasswordHasher to avoid bcrypt's cost.
package auth
