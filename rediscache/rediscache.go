// Package rediscache provides a Redis-backed projection cache.
//
// Projections are pure, so a shared cache lets several processes (the CLI,
// the agent) reuse each other's results. Entries carry a TTL so a stale
// cache never needs manual cleanup.
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the entries so the cache can share a Redis database
// with other tools.
const keyPrefix = "fincast:"

// DefaultTTL is the lifetime of a cached projection.
const DefaultTTL = 24 * time.Hour

// Cache is a Redis-backed implementation of the planner cache. It satisfies
// fincast's Cache interface.
type Cache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// New connects to the Redis server at addr with the default TTL.
func New(addr string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Cache{
		client: rdb,
		ctx:    context.Background(),
		ttl:    DefaultTTL,
	}
}

// WithTTL returns a copy of the cache using the given entry lifetime.
// A zero ttl keeps entries until Redis evicts them.
func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	copy := *c
	copy.ttl = ttl
	return &copy
}

// Get returns the cached value for key, and whether it was present.
// Any Redis error reads as a miss: the planner recomputes.
func (c *Cache) Get(key string) (string, bool) {
	val, err := c.client.Get(c.ctx, keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key.
func (c *Cache) Set(key string, value string) error {
	return c.client.Set(c.ctx, keyPrefix+key, value, c.ttl).Err()
}

// Ping checks the connection, so the CLI can fall back to no cache instead
// of failing every projection.
func (c *Cache) Ping() error {
	return c.client.Ping(c.ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
