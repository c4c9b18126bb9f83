package cache

import (
	"context"
	"sync"
	"time"

	"advocate-directory/internal/domain/entity"
)

type memoryEntry struct {
	result    *entity.SearchResult
	expiresAt time.Time
}

// MemoryCache is the in-process ResultCache backend, used when no Redis
// is configured. Expired entries are evicted lazily on read; the entire
// map is dropped on InvalidateAll.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, filter *entity.AdvocateFilter) (*entity.SearchResult, bool) {
	key := Key(filter)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.result, true
}

func (c *MemoryCache) Set(_ context.Context, filter *entity.AdvocateFilter, result *entity.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Key(filter)] = memoryEntry{
		result:    result,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *MemoryCache) InvalidateAll(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)
}
