package availability

import (
	"context"
	"testing"
	"time"

	"hostly/models"
)

func TestMemoryBusyCacheHitWithinTTL(t *testing.T) {
	now := time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryBusyCache()
	cache.Now = func() time.Time { return now }

	intervals := []models.BusyInterval{
		{Start: now, End: now.Add(time.Hour)},
	}
	cache.Set(context.Background(), "host-1", intervals, 5*time.Minute)

	now = now.Add(4 * time.Minute)
	got, ok := cache.Get(context.Background(), "host-1")
	if !ok {
		t.Fatal("expected cache hit within TTL")
	}
	if len(got) != 1 || !got[0].Start.Equal(intervals[0].Start) {
		t.Errorf("got %+v, want %+v", got, intervals)
	}
}

func TestMemoryBusyCacheExpiryEvicts(t *testing.T) {
	now := time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryBusyCache()
	cache.Now = func() time.Time { return now }

	cache.Set(context.Background(), "host-1", nil, 5*time.Minute)

	now = now.Add(5*time.Minute + time.Second)
	if _, ok := cache.Get(context.Background(), "host-1"); ok {
		t.Fatal("expected miss past expiry")
	}

	// The expired read must also have evicted: even after rewinding the
	// clock the entry stays gone.
	now = now.Add(-2 * time.Minute)
	if _, ok := cache.Get(context.Background(), "host-1"); ok {
		t.Fatal("expected expired entry to be evicted")
	}
}

func TestMemoryBusyCacheInvalidate(t *testing.T) {
	cache := NewMemoryBusyCache()
	cache.Set(context.Background(), "host-1", nil, time.Hour)

	cache.Invalidate(context.Background(), "host-1")
	if _, ok := cache.Get(context.Background(), "host-1"); ok {
		t.Fatal("expected miss after invalidation")
	}

	// Invalidating an absent key is a no-op.
	cache.Invalidate(context.Background(), "host-2")
}

func TestMemoryBusyCacheKeysAreIndependent(t *testing.T) {
	cache := NewMemoryBusyCache()
	cache.Set(context.Background(), "host-1", nil, time.Hour)
	cache.Set(context.Background(), "host-2", nil, time.Hour)

	cache.Invalidate(context.Background(), "host-1")
	if _, ok := cache.Get(context.Background(), "host-2"); !ok {
		t.Fatal("invalidating one host must not touch another")
	}
}
