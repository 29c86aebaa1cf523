// Package redis provides the go-redis backed implementation of the key-value
// cache port.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is applied when Set is called with a non-positive ttl, so no
// entry can live in the store forever.
const DefaultTTL = 8 * time.Hour

// Cache implements ports.Cache on top of a Redis server.
// Errors from the server are returned as-is; callers are expected to degrade
// to a cache miss rather than fail their own operation.
type Cache struct {
	client *redis.Client
}

// NewCache creates a cache backed by the Redis server at addr.
func NewCache(addr string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the value stored under key, or the empty string on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value under key for the given ttl.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return c.client.Set(ctx, key, value, ttl).Err()
}

// Del removes key from the store. Deleting an absent key is not an error.
func (c *Cache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the underlying client connections.
func (c *Cache) Close() error {
	return c.client.Close()
}
