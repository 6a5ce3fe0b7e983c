// Package postgres provides the PostgreSQL implementations of the store
// interfaces defined in internal/store. Queries go through store.DBTX so the
// same store works on a pool or inside a transaction. Driver errors are
// translated to store sentinels with MapError.
//
// The schema lives in the migrations subpackage and is applied with goose.
package postgres
