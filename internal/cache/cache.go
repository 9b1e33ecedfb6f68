// Package cache provides the time-boxed memoization layer wrapped around the
// explore and search services. Entries are independent and idempotently
// recomputable, so a single mutex over a plain map is all the coordination
// the service needs.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	payload  any
	storedAt time.Time
}

// Cache is an in-memory TTL map keyed by logical query name. Staleness is
// checked lazily on access; there is no background sweep and no size bound —
// the key space is either fixed (explore sections) or short-lived (search
// query strings within a session).
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a cache with the given TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock creates a cache with an injected clock, for tests.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	c := New(ttl)
	c.now = now
	return c
}

// Get returns the stored payload for key while it is fresh. A stale entry is
// evicted and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key with the current timestamp, overwriting any
// prior entry.
func (c *Cache) Set(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{payload: payload, storedAt: c.now()}
}
