// Package cache provides a small process-local TTL cache. Entries carry an
// absolute expiry set at write time and are evicted lazily on read; there is
// no background sweep, no capacity bound and no LRU behaviour.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is applied when Set is called with a non-positive TTL.
const DefaultTTL = 300 * time.Second

type entry[V any] struct {
	value  V
	expiry time.Time
}

// Cache maps string keys to values of type V. All methods are safe for
// concurrent use; a single mutex serialises access.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Set stores value under key, unconditionally overwriting any existing entry
// and its expiry. A non-positive ttl falls back to DefaultTTL.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{
		value:  value,
		expiry: c.now().Add(ttl),
	}
}

// Get returns the value stored under key. An entry past its expiry is
// removed as a side effect of the read and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.now().After(e.expiry) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Delete removes the entry under key if present; otherwise it is a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, including any that have expired
// but have not yet been evicted by a read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
