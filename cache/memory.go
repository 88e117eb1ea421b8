package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL bounds how stale a cached list view can get even without an
// explicit invalidation.
const DefaultTTL = 5 * time.Minute

// Store is the global cache instance used by the controllers.
var Store Cache = NewMemoryCache(DefaultTTL, 10*time.Minute)

// MemoryCache is an in-process Cache backed by go-cache.
type MemoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		c: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

// Get copies the cached value into target via a JSON round trip, so callers
// never share a mutable reference with the cache.
func (m *MemoryCache) Get(ctx context.Context, key string, target interface{}) error {
	val, found := m.c.Get(key)
	if !found {
		return ErrMiss
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, target)
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Flush drops every entry. Used between tests.
func (m *MemoryCache) Flush() {
	m.c.Flush()
}
