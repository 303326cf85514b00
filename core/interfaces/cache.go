// Package interfaces defines the contracts between the core services and
// their infrastructure. Services receive these through Dependencies so
// they can be tested against fakes.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when a key is absent or expired
var ErrCacheMiss = errors.New("key not found")

// Cache stores serialized listing responses.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	err := cache.Set(ctx, "listing:topics", payload, 5*time.Minute)
//
//	data, err := cache.Get(ctx, "listing:topics")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// fetch from upstream
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
