package repository

import "outside/internal/errors"

// ErrConcurrencyConflict is returned by Update methods when the row was
// modified or deleted after it was read, i.e. its version no longer matches.
var ErrConcurrencyConflict = errors.New("optimistic concurrency conflict")
