package domain

import "errors"

// Sentinel errors returned by the storage layer. Handlers map these to
// HTTP status codes; everything else is treated as an internal error.
var (
	// ErrNotFound is returned when a lookup by id or key matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint, e.g. two content items with the same key.
	ErrDuplicateKey = errors.New("duplicate key")
)
