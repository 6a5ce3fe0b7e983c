// Package service contains the application use cases. It coordinates domain
// objects, the stores defined in internal/store and cross-cutting helpers such
// as password hashing, and owns transaction boundaries.
//
// Services receive their dependencies through constructors and depend only on
// interfaces, never on a concrete store implementation.
package service
