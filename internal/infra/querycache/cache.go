// Package querycache holds backend read results keyed by slash-separated keys.
// Mutations invalidate by key prefix so the next read refetches.
package querycache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/clock"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

type Key string

// NewKey joins parts with "/", e.g. NewKey("bookings", "my", 7) == "bookings/my/7".
func NewKey(parts ...any) Key {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = fmt.Sprint(p)
	}
	return Key(strings.Join(ss, "/"))
}

// HasPrefix reports whether prefix names k itself or one of its ancestors.
func (k Key) HasPrefix(prefix Key) bool {
	if prefix == "" {
		return true
	}
	return k == prefix || strings.HasPrefix(string(k), string(prefix)+"/")
}

type Loader func(ctx context.Context) (any, error)

type entry struct {
	value   any
	expires time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
	// gen is bumped by Invalidate so in-flight loads started earlier are not stored.
	gen     uint64
	ttl     time.Duration
	clock   clock.Clock
	group   singleflight.Group
	metrics *metrics.Metrics
}

func New(cfg config.CacheConfig, clk clock.Clock, m *metrics.Metrics) *Cache {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Cache{
		entries: make(map[Key]entry),
		ttl:     cfg.TTL,
		clock:   clk,
		metrics: m,
	}
}

// Fetch returns the cached value for key or runs load. Concurrent misses for the
// same key share one load. Errors are returned and never cached.
func (c *Cache) Fetch(ctx context.Context, key Key, load Loader) (any, error) {
	if v, ok := c.lookup(key); ok {
		c.metrics.CacheLookup(true)
		return v, nil
	}
	c.metrics.CacheLookup(false)

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, value, gen)
		return value, nil
	})
	return v, err
}

// Invalidate drops every entry whose key has one of the given prefixes.
func (c *Cache) Invalidate(prefixes ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for k := range c.entries {
		for _, p := range prefixes {
			if k.HasPrefix(p) {
				delete(c.entries, k)
				break
			}
		}
	}
}

func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key Key, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.entries[key] = entry{value: value, expires: c.clock.Now().Add(c.ttl)}
}

// Get is the typed form of Fetch.
func Get[T any](ctx context.Context, c *Cache, key Key, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, errs.Newf("cached value for %q has unexpected type %T", key, v)
	}
	return out, nil
}
