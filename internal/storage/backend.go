// Package storage provides the key-value persistence port and its two
// adapters: a synchronous single-file JSON store (the legacy backend and
// migration source) and a SQLite-backed store (the primary, higher-capacity
// backend).
package storage

import "context"

// Backend is the durable key-value port. Values are opaque byte blobs;
// the typed layer above serializes JSON into them.
//
// Implementations are not required to be safe for concurrent mutation of
// the same key; the store layer serializes writers.
type Backend interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
