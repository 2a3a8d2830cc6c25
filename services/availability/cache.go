package availability

import (
	"context"
	"sync"
	"time"

	"hostly/models"
)

// BusyTimeCache keeps successfully fetched external busy intervals per host
// for a short TTL. Implementations must be safe for concurrent use; the
// cache holds fetched results only, never degraded (failed) reads.
type BusyTimeCache interface {
	Get(ctx context.Context, hostID string) ([]models.BusyInterval, bool)
	Set(ctx context.Context, hostID string, intervals []models.BusyInterval, ttl time.Duration)
	Invalidate(ctx context.Context, hostID string)
}

type cacheEntry struct {
	intervals []models.BusyInterval
	expiresAt time.Time
}

// MemoryBusyCache is an in-process BusyTimeCache. Construct one per service
// instance and inject it; there is no package-level instance, so tests can
// run isolated caches side by side.
type MemoryBusyCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewMemoryBusyCache() *MemoryBusyCache {
	return &MemoryBusyCache{
		entries: make(map[string]cacheEntry),
		Now:     time.Now,
	}
}

// Get returns the cached intervals when present and unexpired. A read past
// the expiry evicts the entry and misses.
func (c *MemoryBusyCache) Get(_ context.Context, hostID string) ([]models.BusyInterval, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[hostID]
	if !ok {
		return nil, false
	}
	if c.Now().After(entry.expiresAt) {
		delete(c.entries, hostID)
		return nil, false
	}
	return entry.intervals, true
}

func (c *MemoryBusyCache) Set(_ context.Context, hostID string, intervals []models.BusyInterval, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[hostID] = cacheEntry{
		intervals: intervals,
		expiresAt: c.Now().Add(ttl),
	}
}

// Invalidate removes the entry unconditionally; a no-op when absent.
func (c *MemoryBusyCache) Invalidate(_ context.Context, hostID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, hostID)
}
