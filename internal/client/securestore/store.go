// Package securestore keeps small secret string values (session token,
// serialized profile) durable across process restarts.
//
// Store is the capability the session core depends on: asynchronous-style
// get/set/delete of string values by key, each call honoring ctx. Batch is
// an optional extension for backends that can apply several writes or
// deletes atomically; the session manager uses it when available so the
// token and the profile are never persisted one without the other.
//
// Two implementations are provided:
//
//   - SQLiteStore seals every value with AES-GCM under a key derived from a
//     per-device secret and keeps it in the local SQLite database.
//   - MemoryStore is a process-local map, used for ephemeral runs and tests.
package securestore

import (
	"context"
	"errors"
)

var (
	// ErrUndecryptable is returned by Get when a stored value cannot be
	// opened with the current key (different device secret or tampering).
	ErrUndecryptable = errors.New("securestore: value cannot be decrypted")

	// ErrEmptyKey is returned for operations on an empty key.
	ErrEmptyKey = errors.New("securestore: empty key")
)

// Store is a durable string key-value store.
//
// Get reports ok=false with a nil error when the key is absent. Deleting an
// absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Batch applies several changes as one unit: either all of them are
// visible afterwards or none is.
type Batch interface {
	SetMany(ctx context.Context, items map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
}
