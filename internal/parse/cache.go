package parse

import (
	"sync"

	"github.com/andrewsipe/FontCore/internal/advisory"
)

// Cache memoizes Parse results by filename. It is an explicit object owned
// by the caller; there is no process-wide cache. Safe for concurrent use.
//
// Cached Parts are shared between callers; they are immutable by contract,
// so sharing is safe. Callers keying a cache across dictionary upgrades
// should include styledict.DictionaryVersion in their own key.
type Cache struct {
	mu    sync.RWMutex
	m     map[string]cacheEntry
	limit int
}

type cacheEntry struct {
	parts Parts
	advs  []advisory.Advisory
}

// NewCache returns an empty parse cache with no entry limit.
func NewCache() *Cache {
	return NewCacheSized(-1)
}

// NewCacheSized returns a cache holding at most limit entries. Once full it
// keeps serving hits but stops storing new results. A limit of zero means
// memoization is disabled and every call parses; a negative limit means
// unlimited.
func NewCacheSized(limit int) *Cache {
	return &Cache{m: make(map[string]cacheEntry), limit: limit}
}

// Parse returns the memoized parts for filename, computing them on first use.
func (c *Cache) Parse(filename string) Parts {
	p, _ := c.ParseDetailed(filename)
	return p
}

// ParseDetailed returns the memoized parts and classification advisories for
// filename, computing both on first use.
func (c *Cache) ParseDetailed(filename string) (Parts, []advisory.Advisory) {
	c.mu.RLock()
	e, ok := c.m[filename]
	c.mu.RUnlock()
	if ok {
		return e.parts, e.advs
	}

	parts, advs := ParseDetailed(filename)
	c.mu.Lock()
	if c.limit < 0 || len(c.m) < c.limit {
		c.m[filename] = cacheEntry{parts: parts, advs: advs}
	}
	c.mu.Unlock()
	return parts, advs
}

// Len reports the number of memoized filenames.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
