package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[int](DefaultConfig())

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache returned a value")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %v, want 2", v)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

}

func TestCache_Expiration(t *testing.T) {
	c := New[string](Config{MaxItems: 10, TTL: time.Hour})

	c.set("short", "x", time.Millisecond)
	c.set("forever", "y", 0)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still returned")
	}
	if v, ok := c.Get("forever"); !ok || v != "y" {
		t.Errorf("Get(forever) = %v, %v", v, ok)
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int](Config{MaxItems: 2})

	c.Set("first", 1)
	time.Sleep(time.Millisecond)
	c.Set("second", 2)
	time.Sleep(time.Millisecond)
	c.Set("third", 3)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry was not evicted")
	}
	if _, ok := c.Get("third"); !ok {
		t.Error("newest entry missing")
	}
}

func TestCache_Stats(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Set("a", 1)

	c.Get("a")
	c.Get("a")
	c.Get("b")
	c.Get("c")

	hits, misses, rate := c.Stats()
	if hits != 2 || misses != 2 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v, want 2, 2, 50", hits, misses, rate)
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string](DefaultConfig())
	calls := 0
	compute := func() (string, error) {
		calls++
		return "computed", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("k", compute)
		if err != nil || v != "computed" {
			t.Fatalf("GetOrSet() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	failure := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (string, error) { return "", failure }); !errors.Is(err, failure) {
		t.Errorf("GetOrSet() error = %v, want %v", err, failure)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation was cached")
	}
}

func TestCache_GetOrSetKeepsFirstValue(t *testing.T) {
	type program struct{ source string }
	c := New[*program](DefaultConfig())

	first, err := c.GetOrSet("k", func() (*program, error) { return &program{"print 1"}, nil })
	if err != nil {
		t.Fatalf("GetOrSet() error = %v", err)
	}
	second, _ := c.GetOrSet("k", func() (*program, error) { return &program{"other"}, nil })
	if first != second {
		t.Error("GetOrSet() returned a new value for a cached key")
	}
}
