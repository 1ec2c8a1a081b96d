package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. No error here aborts
// an analysis run for partial data: missing collections degrade to
// empty results.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the signal store backend could
	// not be opened at all (as opposed to a merely empty collection).
	ErrStoreUnavailable = errors.New("signal store unavailable")
)
