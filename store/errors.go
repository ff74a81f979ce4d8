package store

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned by point lookups for an unknown id.
	ErrNotFound = errors.New("store: not found")

	// ErrClosed is returned when the Store was already closed.
	ErrClosed = errors.New("store: closed")
)
