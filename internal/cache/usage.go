// Package cache memoizes classification results by catalog and content checksum.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// UsageCache is a bounded, concurrency-safe map from a key to the usage
// classified for it. Scanners key entries by catalog fingerprint and content
// checksum, so one cache may serve scanners with different catalogs. Values are cloned on insert and lookup,
// so callers never share sets with the cache.
type UsageCache struct {
	entries *lru.Cache[string, hsscan.FileUsage]
}

// New creates a cache holding at most size entries. size must be positive.
func New(size int) (*UsageCache, error) {
	entries, err := lru.New[string, hsscan.FileUsage](size)
	if err != nil {
		return nil, err
	}
	return &UsageCache{entries: entries}, nil
}

// Get returns the usage stored for key.
func (c *UsageCache) Get(key string) (hsscan.FileUsage, bool) {
	u, ok := c.entries.Get(key)
	if !ok {
		return hsscan.FileUsage{}, false
	}
	return u.Clone(), true
}

// Add stores usage for key, evicting the least recently used entry when full.
func (c *UsageCache) Add(key string, usage hsscan.FileUsage) {
	c.entries.Add(key, usage.Clone())
}

// Len returns the number of cached entries.
func (c *UsageCache) Len() int { return c.entries.Len() }
