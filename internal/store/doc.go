// Package store defines the account persistence interface, the sentinel
// errors shared by its implementations and a transaction helper for services.
// Concrete implementations live in internal/platform/postgres.
package store
