package ports

import (
	"context"
	"time"
)

// Cache is a minimal key-value store with per-entry expiration.
// Implementations must treat transient unavailability as their own concern:
// callers degrade to a cache miss on any returned error, so a cache outage
// never fails the surrounding operation.
type Cache interface {
	// Get returns the value stored under key, or the empty string when the
	// key is absent or expired. An empty stored value is indistinguishable
	// from a miss; callers must not cache empty payloads.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key for the given ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes key from the store. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error
}
