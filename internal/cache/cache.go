// Package cache is a process-local key→value map with per-entry TTL, used
// by the HTTP layer to avoid recomputing filtered views. It offers no
// cross-instance coherence: write paths must clear their key-space
// explicitly or readers observe stale data until expiry.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL matches the API layer's standard response window.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value when present and unexpired. A stale entry is
// deleted on the spot and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set inserts or overwrites key with a fresh expiry.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Clear removes every key containing pattern as a substring; an empty
// pattern empties the whole cache.
func (c *Cache) Clear(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "" {
		c.entries = make(map[string]entry)
		return
	}
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOr returns the cached value for key, computing and storing it via
// fetch on a miss. Errors from fetch are returned uncached.
func GetOr[T any](c *Cache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, value, ttl)
	return value, nil
}
