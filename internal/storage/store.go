// Package storage persists the board snapshot as JSON documents under fixed keys.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is a last-write-wins key-value store.
type Store interface {
	// Get returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all entries or none.
	SetMany(ctx context.Context, entries map[string][]byte) error
}
