package client

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is the process-wide query cache: entries are keyed by operation plus
// filter parameters, and mutations invalidate by key prefix so the next read
// refetches instead of trusting stale data. Concurrent identical fetches are
// collapsed through singleflight.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

func (c *Cache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) set(key string, v interface{}) {
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with prefix.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Clear drops everything; used on sign-out.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]interface{})
	c.mu.Unlock()
}

// cached returns the entry under key, fetching it at most once per miss.
// Errors are never cached.
func cached[T any](c *Cache, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.get(key); ok {
		return v.(T), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check: a concurrent caller may have populated the entry
		// between the miss and the flight.
		if v, ok := c.get(key); ok {
			return v, nil
		}
		fetched, err := fetch()
		if err != nil {
			return nil, err
		}
		c.set(key, fetched)
		return fetched, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
