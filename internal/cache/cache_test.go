package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = (%d, %v), want (42, true)", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) found an entry")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 3 {
		val, err := c.GetOrCreate("key1", create)
		if err != nil || val != 100 {
			t.Fatalf("GetOrCreate = (%d, %v), want (100, nil)", val, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheGetOrCreateErrorNotCached(t *testing.T) {
	c := New[string, int](10)
	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("GetOrCreate error = %v, want %v", err, errBoom)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed create, want 0", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key 1 survived eviction")
	}
	if _, ok := c.Get(4); !ok {
		t.Error("newest key 4 was evicted")
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](8)
	c.Set("a", 1)
	c.Get("a")
	c.Get("b")
	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 || s.Len != 1 || s.Capacity != 8 {
		t.Errorf("Stats() = %+v", s)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := (g*31 + i) % 100
				_, _ = c.GetOrCreate(k, func() (int, error) { return k * 2, nil })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("Len() = %d, exceeds soft limit 64", c.Len())
	}
}
