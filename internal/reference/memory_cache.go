package reference

import (
	"context"
	"sync"
	"time"

	"github.com/davidbz/policybot/internal/domain"
)

type cacheEntry struct {
	page      domain.ReferencePage
	expiresAt time.Time
}

// MemoryCache is an in-process ReferenceCache used when Redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[int]cacheEntry
	now     domain.Clock
}

var _ domain.ReferenceCache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[int]cacheEntry),
		now:     time.Now,
	}
}

// WithClock replaces the clock used for expiry.
func (c *MemoryCache) WithClock(now domain.Clock) *MemoryCache {
	c.now = now
	return c
}

// Get returns a copy of an unexpired page.
func (c *MemoryCache) Get(_ context.Context, pageID int) (*domain.ReferencePage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[pageID]
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		delete(c.entries, pageID)
		return nil, nil
	}

	page := entry.page
	return &page, nil
}

// Put stores a copy of page. A non-positive ttl never expires.
func (c *MemoryCache) Put(_ context.Context, page *domain.ReferencePage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{page: *page}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries[page.ID] = entry

	return nil
}

// Delete drops one page.
func (c *MemoryCache) Delete(_ context.Context, pageID int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[pageID]; !ok {
		return 0, nil
	}
	delete(c.entries, pageID)
	return 1, nil
}

// Flush drops every page.
func (c *MemoryCache) Flush(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[int]cacheEntry)
	return n, nil
}
