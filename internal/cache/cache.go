// Package cache provides a string-keyed TTL cache with single-flight
// population: concurrent misses for the same key coalesce onto one in-flight
// populate call instead of each triggering their own.
//
// Invalidation is purely time-based. The cache is an explicit dependency
// injected into the pipeline, not a process-wide singleton, so tests control
// its lifetime.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a shared, time-invalidated key/value store.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the unexpired value for key, if any.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores a value with its TTL.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// GetOrPopulate returns the cached value for key, or runs populate to fill
// it. At most one populate per key runs at a time; concurrent callers share
// its result. A populate error is returned to every waiting caller and
// nothing is cached.
func (c *Cache) GetOrPopulate(key string, ttl time.Duration, populate func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have populated while we waited on the group
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := populate()
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	return v, err
}

// Invalidate removes a key immediately.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
