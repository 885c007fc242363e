// Package localstore defines a small durable key/value store with the
// semantics of browser local storage: string keys, string values, no expiry.
//
//go:generate mockgen -package mocklocalstore -source=localstore.go -destination=mock/mocklocalstore.go *
package localstore

import "context"

// Store persists string values under string keys across process restarts.
type Store interface {
	// GetItem returns the value stored under key. The boolean is false when
	// the key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
