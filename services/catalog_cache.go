// services/catalog_cache.go
package services

import (
	"sync"
	"time"

	"social-connect-platform/models"
)

// CatalogCache holds the most recently fetched video catalog so feed
// ordering stays stable within a session and feeds keep rendering through
// store blips. The refresh worker fills it; feed reads fall through to the
// gateway when it goes stale.
type CatalogCache struct {
	mu        sync.RWMutex
	videos    []models.Video
	fetchedAt time.Time
	ttl       time.Duration
}

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{ttl: ttl}
}

// Put replaces the cached catalog.
func (c *CatalogCache) Put(videos []models.Video) {
	copied := append([]models.Video(nil), videos...)
	c.mu.Lock()
	c.videos = copied
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}

// Fresh returns a copy of the cached catalog and whether it is still within
// its TTL. An empty cache is never fresh.
func (c *CatalogCache) Fresh() ([]models.Video, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() || time.Since(c.fetchedAt) > c.ttl {
		return nil, false
	}
	return append([]models.Video(nil), c.videos...), true
}
