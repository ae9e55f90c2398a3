package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](opts Options, observe Observer) (*Cache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := New[V](opts, observe)
	c.now = clock.Now
	return c, clock
}

func TestCacheHitMissExpiry(t *testing.T) {
	var hits, misses atomic.Int32
	c, clock := newTestCache[int](Options{TTL: time.Minute}, func(o Outcome) {
		switch o {
		case OutcomeHit:
			hits.Add(1)
		case OutcomeMiss:
			misses.Add(1)
		}
	})

	calls := 0
	load := func(context.Context, string) (int, error) {
		calls++
		return calls, nil
	}

	v, err := c.Get(context.Background(), "k", load)
	if err != nil || v != 1 {
		t.Fatalf("expected first load, got %d %v", v, err)
	}
	v, _ = c.Get(context.Background(), "k", load)
	if v != 1 {
		t.Fatalf("expected cached value, got %d", v)
	}

	clock.Advance(time.Minute)
	v, _ = c.Get(context.Background(), "k", load)
	if v != 2 {
		t.Fatalf("expected reload after expiry, got %d", v)
	}
	if hits.Load() != 1 || misses.Load() != 2 {
		t.Fatalf("unexpected hits=%d misses=%d", hits.Load(), misses.Load())
	}
}

func TestCacheSingleflightCollapsesConcurrentMisses(t *testing.T) {
	c, _ := newTestCache[string](Options{TTL: time.Minute}, nil)

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context, string) (string, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := c.Get(context.Background(), "k", load); err != nil || v != "v" {
				t.Errorf("unexpected result %q %v", v, err)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected a single load, got %d", calls.Load())
	}
}

func TestCacheErrorsAreNotCachedByDefault(t *testing.T) {
	c, _ := newTestCache[int](Options{TTL: time.Minute}, nil)
	boom := errors.New("boom")
	calls := 0
	load := func(context.Context, string) (int, error) {
		calls++
		return 0, boom
	}

	for i := 0; i < 2; i++ {
		if _, err := c.Get(context.Background(), "k", load); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected loader to run each time, got %d", calls)
	}
}

func TestCacheNegativeTTL(t *testing.T) {
	c, clock := newTestCache[int](Options{TTL: time.Minute, NegativeTTL: 10 * time.Second}, nil)
	boom := errors.New("not found")
	calls := 0
	load := func(context.Context, string) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	if _, err := c.Get(context.Background(), "k", load); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if _, err := c.Get(context.Background(), "k", load); !errors.Is(err, boom) {
		t.Fatalf("expected cached error, got %v", err)
	}
	if _, ok := c.Peek("k"); ok {
		t.Fatalf("negative entries must not peek")
	}

	clock.Advance(10 * time.Second)
	v, err := c.Get(context.Background(), "k", load)
	if err != nil || v != 7 {
		t.Fatalf("expected reload after negative ttl, got %d %v", v, err)
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	var evictions atomic.Int32
	c, _ := newTestCache[string](Options{TTL: time.Minute, MaxEntries: 2}, func(o Outcome) {
		if o == OutcomeEvict {
			evictions.Add(1)
		}
	})
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	if _, ok := c.Peek("a"); ok {
		t.Fatalf("expected a to be evicted")
	}
	if v, ok := c.Peek("c"); !ok || v != "3" {
		t.Fatalf("expected c to be present")
	}
	if c.Len() != 2 || evictions.Load() != 1 {
		t.Fatalf("unexpected len=%d evictions=%d", c.Len(), evictions.Load())
	}

	c.Delete("b")
	if _, ok := c.Peek("b"); ok {
		t.Fatalf("expected b to be deleted")
	}
}

func TestKey(t *testing.T) {
	if Key("u1", "instagram") == Key("u1i", "nstagram") {
		t.Fatalf("key parts must not collide")
	}
}
