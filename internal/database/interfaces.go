// Package database defines the persistence adapter used by the board engine
package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key
var ErrNotFound = errors.New("key not found")

// Store loads and saves opaque serialized state by key.
// Implementations perform no interpretation of the stored values.
type Store interface {
	// Get returns the raw value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

// Compile-time verification that both stores implement Store
var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
