package ports

import (
	"context"
	"time"
)

// Cache is a key-value store with expiry, used for cache-aside reads.
// A miss is (_, false, nil); cache failures must never fail a read
// path, callers fall through to the backing store.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
