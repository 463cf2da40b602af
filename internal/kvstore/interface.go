package kvstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/flowly/internal/kvstore Store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set or was removed
var ErrNotFound = errors.New("key not found")

// Store is a durable string-keyed store.
// Writes are crash-consistent per key; there are no transactions across keys.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
