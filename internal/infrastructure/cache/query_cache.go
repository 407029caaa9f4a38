// Package cache provides a read-through cache keyed by query identity.
//
// Entries expire after a TTL and are dropped explicitly by the writer that
// mutates the underlying data (Invalidate, InvalidatePrefix, InvalidateAll).
// Concurrent misses on the same key share one load.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// QueryCache caches query results of type V. Cached values are shared between
// callers and must be treated as read-only.
type QueryCache[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]entry[V]
	gen   uint64
}

func New[V any](ttl time.Duration) *QueryCache[V] {
	return &QueryCache[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key or runs load and caches its result.
// Errors are never cached. A load that started before an invalidation does not
// repopulate the cache.
func (c *QueryCache[V]) Get(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	gen := c.gen
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiresAt) {
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		val, err := load(ctx)
		if err != nil {
			return val, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.items[key] = entry[V]{value: val, expiresAt: c.now().Add(c.ttl)}
		}
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

func (c *QueryCache[V]) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for _, k := range keys {
		delete(c.items, k)
	}
}

func (c *QueryCache[V]) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
}

func (c *QueryCache[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.items = make(map[string]entry[V])
}

func (c *QueryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
