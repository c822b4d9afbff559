package client

import (
	"sync"
	"time"
)

// listCache is a short-lived cache for GET list responses, keyed by the
// serialized query string. It exists to absorb the rapid repeat queries
// the console's course pages issue; mutating calls never consult it.
type listCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value    any
	storedAt time.Time
}

func newListCache(ttl time.Duration, now func() time.Time) *listCache {
	if now == nil {
		now = time.Now
	}
	return &listCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached value for key if it is still inside the TTL
// window. Expired entries are dropped on access.
func (c *listCache) get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *listCache) put(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

// invalidate drops every entry. Called after any course mutation so list
// reads never serve stale rows.
func (c *listCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
