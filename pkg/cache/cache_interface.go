package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so that the
// implementation (Redis, in-memory) can be swapped in tests.
type Cache interface {
	// Get reads a key and unmarshals the stored value into dest.
	// Returns found=false on a miss, in which case dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
