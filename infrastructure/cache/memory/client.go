// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Stores byte slices with per-entry TTL and periodic janitor cleanup

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"studio-app-api/core/interfaces"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// A zero TTL passed to Set stores the entry without expiration.
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(defaultCleanupInterval)
}

// NewMemoryCacheWithCleanup creates a cache whose expired entries are purged every interval
func NewMemoryCacheWithCleanup(interval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, interval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.items.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Count returns the number of entries, including expired ones not yet purged
func (c *MemoryCache) Count() int {
	return c.items.ItemCount()
}
