package cache

import (
	"testing"
	"time"
)

func TestCacheHitWithinTTL(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(15*time.Minute, func() time.Time { return now })

	c.Set("trending", []string{"a", "b"})
	got, ok := c.Get("trending")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if items := got.([]string); len(items) != 2 {
		t.Errorf("unexpected payload %v", items)
	}
}

func TestCacheMissAfterTTL(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(15*time.Minute, func() time.Time { return now })

	c.Set("trending", "payload")
	now = now.Add(15 * time.Minute)
	if _, ok := c.Get("trending"); ok {
		t.Error("entry at exactly TTL age should be stale")
	}
	// The stale entry is evicted, so the next read is a plain miss.
	if _, ok := c.Get("trending"); ok {
		t.Error("evicted entry should stay gone")
	}
}

func TestCacheMissUnknownKey(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("nope"); ok {
		t.Error("unknown key should miss")
	}
}

func TestCacheSetOverwrites(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Minute, func() time.Time { return now })

	c.Set("search:taco", 1)
	now = now.Add(4 * time.Minute)
	c.Set("search:taco", 2)
	now = now.Add(2 * time.Minute)

	// The overwrite reset the clock: 2 minutes after the second Set, fresh.
	got, ok := c.Get("search:taco")
	if !ok {
		t.Fatal("expected a hit after overwrite")
	}
	if got.(int) != 2 {
		t.Errorf("expected overwritten payload 2, got %v", got)
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Minute, func() time.Time { return now })

	c.Set("a", "x")
	now = now.Add(3 * time.Minute)
	c.Set("b", "y")
	now = now.Add(3 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("key a should be stale")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("key b should still be fresh")
	}
}
