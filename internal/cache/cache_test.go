package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/phrasplit/phrasplit/core/segment"
)

func TestBasicGetPut(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10})

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Put("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 2})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("entry b should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("entry c should survive")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestAccessRefreshesRecency(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 2})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // a is now most recently used
	c.Put("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry should survive eviction")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry should be gone")
	}
}

func TestPutUpdatesExisting(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 2})

	c.Put("a", 1)
	c.Put("a", 10)

	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("updated value = %d, want 10", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10, TTL: 10 * time.Millisecond})

	c.Put("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("fresh entry should be present")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Error("expired entry should be gone")
	}
}

func TestOnEvictCallback(t *testing.T) {
	var evictedKey interface{}
	c := NewLRUCache[string, int](Config{
		MaxSize: 1,
		OnEvict: func(key, value interface{}) { evictedKey = key },
	})

	c.Put("a", 1)
	c.Put("b", 2)

	if evictedKey != "a" {
		t.Errorf("OnEvict got key %v, want a", evictedKey)
	}
}

func TestClearAndLen(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10})

	c.Put("a", 1)
	c.Put("b", 2)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestStatsCounters(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10})

	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 {
		t.Errorf("Hits = %d, want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1", s.Misses)
	}
	if s.Size != 1 {
		t.Errorf("Size = %d, want 1", s.Size)
	}
	if s.MaxSize != 10 {
		t.Errorf("MaxSize = %d, want 10", s.MaxSize)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewLRUCache[int, int](Config{MaxSize: 50})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Put(j%20, n)
				c.Get(j % 20)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 20 {
		t.Errorf("Len = %d, want at most 20", c.Len())
	}
}

func TestKeyDeterminism(t *testing.T) {
	k1 := Key("Hello world.", "sentence", "fast", 0)
	k2 := Key("Hello world.", "sentence", "fast", 0)
	if k1 != k2 {
		t.Error("identical requests should produce identical keys")
	}
}

func TestKeyDistinguishesRequests(t *testing.T) {
	base := Key("Hello world.", "sentence", "fast", 0)
	variants := []string{
		Key("Hello world!", "sentence", "fast", 0),
		Key("Hello world.", "clause", "fast", 0),
		Key("Hello world.", "sentence", "accurate", 0),
		Key("Hello world.", "sentence", "fast", 80),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with base key", i)
		}
	}
}

func TestSegmentCache(t *testing.T) {
	c := NewDefaultSegmentCache()

	key := Key("Hello world.", "sentence", "fast", 0)
	segs := []segment.Segment{
		{ID: "p0s0", Text: "Hello world.", CharStart: 0, CharEnd: 12, Level: segment.LevelSentence},
	}

	if _, ok := c.Get(key); ok {
		t.Error("expected miss before Put")
	}

	c.Put(key, segs)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if len(got) != 1 || got[0].ID != "p0s0" {
		t.Errorf("cached result mismatch: %v", got)
	}

	c.Remove(key)
	if _, ok := c.Get(key); ok {
		t.Error("expected miss after Remove")
	}
}

func TestSegmentCacheEviction(t *testing.T) {
	c := NewSegmentCache(Config{MaxSize: 3})

	for i := 0; i < 5; i++ {
		key := Key(fmt.Sprintf("text %d", i), "sentence", "fast", 0)
		c.Put(key, nil)
	}

	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if got := c.Stats().Evictions; got != 2 {
		t.Errorf("Evictions = %d, want 2", got)
	}
}
