package store

import (
	"context"
	"errors"
)

// Persistence is a named key-value snapshot store. Each key holds one
// JSON-serialisable snapshot (cart items, selected location, auth state)
// that is rehydrated on the next request for the same session.
type Persistence interface {
	// Load reads the snapshot stored under key into dest.
	// Returns ErrNotFound when no snapshot exists.
	Load(ctx context.Context, key string, dest interface{}) error

	// Save writes value as the snapshot for key, replacing any previous one.
	Save(ctx context.Context, key string, value interface{}) error

	// Delete removes the snapshot for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrNotFound indicates no snapshot exists for the requested key.
var ErrNotFound = errors.New("snapshot not found")
