// Package cache is a small typed TTL cache whose loads are collapsed with
// singleflight, so concurrent misses on one key run the loader once.
package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Options controls entry lifetime and size.
type Options struct {
	// TTL is how long a loaded value is served. Zero disables storing.
	TTL time.Duration
	// NegativeTTL keeps loader errors for this long; zero means errors are not cached.
	NegativeTTL time.Duration
	// MaxEntries bounds the cache; the oldest entry is evicted first. Zero is unbounded.
	MaxEntries int
}

// Outcome labels a cache event for metrics.
type Outcome string

const (
	OutcomeHit   Outcome = "hit"
	OutcomeMiss  Outcome = "miss"
	OutcomeError Outcome = "error"
	OutcomeEvict Outcome = "evict"
)

// Observer receives cache events. Implementations must be safe for concurrent use.
type Observer func(outcome Outcome)

// Loader produces the value for a key on a miss.
type Loader[V any] func(ctx context.Context, key string) (V, error)

type entry[V any] struct {
	key       string
	value     V
	err       error
	expiresAt time.Time
	elem      *list.Element
}

// Cache maps string keys to values of type V.
type Cache[V any] struct {
	mu       sync.Mutex
	items    map[string]*entry[V]
	order    *list.List
	opts     Options
	observe  Observer
	now      func() time.Time
	inflight singleflight.Group
}

// New returns an empty cache. observe may be nil.
func New[V any](opts Options, observe Observer) *Cache[V] {
	if observe == nil {
		observe = func(Outcome) {}
	}
	return &Cache[V]{
		items:   make(map[string]*entry[V]),
		order:   list.New(),
		opts:    opts,
		observe: observe,
		now:     time.Now,
	}
}

// Key joins parts into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// Get returns the cached value for key, calling load on a miss or after expiry.
func (c *Cache[V]) Get(ctx context.Context, key string, load Loader[V]) (V, error) {
	if v, err, ok := c.lookup(key); ok {
		c.observe(OutcomeHit)
		return v, err
	}
	c.observe(OutcomeMiss)

	res, err, _ := c.inflight.Do(key, func() (interface{}, error) {
		v, err := load(ctx, key)
		c.store(key, v, err)
		return v, err
	})
	if err != nil {
		c.observe(OutcomeError)
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (c *Cache[V]) lookup(key string) (V, error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.removeLocked(e)
		return zero, nil, false
	}
	return e.value, e.err, true
}

func (c *Cache[V]) store(key string, v V, err error) {
	ttl := c.opts.TTL
	if err != nil {
		ttl = c.opts.NegativeTTL
	}
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.items[key]; ok {
		c.removeLocked(old)
	}
	e := &entry[V]{key: key, value: v, err: err, expiresAt: c.now().Add(ttl)}
	e.elem = c.order.PushBack(e)
	c.items[key] = e
	for c.opts.MaxEntries > 0 && len(c.items) > c.opts.MaxEntries {
		oldest := c.order.Front().Value.(*entry[V])
		c.removeLocked(oldest)
		c.observe(OutcomeEvict)
	}
}

func (c *Cache[V]) removeLocked(e *entry[V]) {
	c.order.Remove(e.elem)
	delete(c.items, e.key)
}

// Set stores v under key for the configured TTL.
func (c *Cache[V]) Set(key string, v V) {
	c.store(key, v, nil)
}

// Peek returns a live cached value without loading.
func (c *Cache[V]) Peek(key string) (V, bool) {
	v, err, ok := c.lookup(key)
	if !ok || err != nil {
		var zero V
		return zero, false
	}
	return v, true
}

// Delete drops key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		c.removeLocked(e)
	}
}

// Len is the number of stored entries, expired ones included until next touched.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
