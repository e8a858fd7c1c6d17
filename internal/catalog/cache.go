package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache entry layout.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedMaterialSet wraps a material set with version metadata for cache invalidation
type cachedMaterialSet struct {
	Version  string
	Set      *MaterialSet
	CachedAt time.Time
}

// materialCache provides an in-memory LRU cache keyed by game version,
// with time-based expiration and version-based invalidation so a stale
// layout is never served after an upgrade.
type materialCache struct {
	lru *expirable.LRU[string, *cachedMaterialSet]
}

// newMaterialCache creates a cache holding up to size version entries,
// each living for ttl.
func newMaterialCache(size int, ttl time.Duration) *materialCache {
	return &materialCache{
		lru: expirable.NewLRU[string, *cachedMaterialSet](size, nil, ttl),
	}
}

// Get retrieves the material set for a game version.
// Returns (set, true) if found and the entry layout matches.
// Entries with a mismatched layout version are dropped on read.
func (c *materialCache) Get(versionID string) (*MaterialSet, bool) {
	entry, found := c.lru.Get(versionID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(versionID)
		return nil, false
	}

	return entry.Set, true
}

// Set stores a material set under its game version.
func (c *materialCache) Set(versionID string, set *MaterialSet) {
	c.lru.Add(versionID, &cachedMaterialSet{
		Version:  CacheSchemaVersion,
		Set:      set,
		CachedAt: time.Now(),
	})
}

// Invalidate drops one version from the cache.
func (c *materialCache) Invalidate(versionID string) {
	c.lru.Remove(versionID)
}

// Clear removes all entries from the cache.
func (c *materialCache) Clear() {
	c.lru.Purge()
}
