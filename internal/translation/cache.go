package translation

import (
	"sync"

	"service-slides/internal/content"
)

// CacheKey identifies one successful translation. Source is left empty for
// independent entries.
type CacheKey struct {
	Backend content.Backend
	Text    string
	Target  string
	Source  string
}

// Cache memoizes successful translations for the life of the process.
// Entries are never evicted. Failures are never stored.
type Cache struct {
	mu      sync.Mutex
	entries map[CacheKey]string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey]string)}
}

// Get returns a cached translation.
func (c *Cache) Get(key CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a successful translation.
func (c *Cache) Put(key CacheKey, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
