// Package ttlcache provides a keyed in-memory store with per-entry TTL.
package ttlcache

import (
	"sync"
	"time"
)

const cleanupEvery = 10 * time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache stores values under string keys for a bounded lifetime. It is safe
// for concurrent use. Expired entries are dropped lazily on read and swept
// opportunistically on write.
type Cache[V any] struct {
	mu          sync.Mutex
	entries     map[string]entry[V]
	now         func() time.Time
	lastCleanup time.Time
}

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return NewWithClock[V](time.Now)
}

// NewWithClock returns a cache using the given time source. Tests inject a
// deterministic clock here.
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{
		entries:     make(map[string]entry[V]),
		now:         now,
		lastCleanup: now(),
	}
}

// Get returns the value stored under key, if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		var zero V
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the given TTL, overwriting any previous
// entry. A non-positive TTL stores nothing.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}

	if now.Sub(c.lastCleanup) > cleanupEvery {
		c.lastCleanup = now
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
}

// Delete removes the entry stored under key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of stored entries, including not yet swept
// expired ones.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
