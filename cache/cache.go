// Package cache provides the byte-level caches the catalog layers lookups
// behind: a process-local in-memory cache and a Redis-backed one.
package cache

import (
	"context"
	"strings"
	"time"
)

// RawCache is the low-level cache contract working with bytes.
type RawCache interface {
	// Get retrieves an item, reporting whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an item under key for the specified TTL. A zero TTL
	// means the item does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes an item.
	Delete(ctx context.Context, key string) error

	// Close releases any resources used by the cache.
	Close() error
}

// FromURL selects a cache implementation by URL scheme: mem:// yields the
// process-local in-memory cache, anything else is treated as a Redis URL.
func FromURL(cacheURL string) (RawCache, error) {
	if strings.HasPrefix(cacheURL, "mem://") {
		return NewInMemory(), nil
	}

	return NewRedis(cacheURL)
}
