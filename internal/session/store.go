package session

import (
	"context"
	"errors"
)

var (
	// ErrInvalidBackend is returned for an unrecognized SESSION_BACKEND value.
	ErrInvalidBackend = errors.New("invalid session backend")
)

// Store persists session state. Implementations are safe for concurrent use
// at the map level only; overlapping writes to the same session may
// interleave, which callers accept (a client issues turns sequentially).
type Store interface {
	// Get retrieves a session by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id string) (*Data, error)

	// Put creates or replaces a session.
	Put(ctx context.Context, data *Data) error

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases store resources.
	Close() error
}
