package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds a loaded value together with its build time.
type entry[V any] struct {
	value V
	built time.Time
}

// Cache stores values of type V by key for a fixed TTL.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache. A zero TTL disables caching: every GetOrLoad calls the loader,
// though concurrent calls for one key are still collapsed.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the configured time-to-live.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[V]) fresh(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.ttl == 0 || c.now().Sub(e.built) > c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetOrLoad returns the cached value for key, or calls load when it is missing or
// expired. Failed loads are not cached.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	// Fast path
	if v, ok := c.fresh(key); ok {
		return v, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check once inside the flight
		if v, ok := c.fresh(key); ok {
			return v, nil
		}

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = entry[V]{value: v, built: c.now()}
			c.mu.Unlock()
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Invalidate drops the cached value for key.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
