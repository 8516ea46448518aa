// Package cache holds the catalog service's in-process TTL caches.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
)

// Stats counts lookups since the store was created.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

type item[V any] struct {
	value   V
	expires time.Time // zero means no expiry
}

// DefaultLoadTimeout bounds a shared load when no WithLoadTimeout is given.
const DefaultLoadTimeout = time.Minute

// Option configures a Store.
type Option func(*options)

type options struct {
	loadTimeout time.Duration
}

// WithLoadTimeout bounds how long a collapsed load may run once no single
// caller owns it.
func WithLoadTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.loadTimeout = d
		}
	}
}

// Store is a TTL map with per-key load collapsing. Invalidation bumps a
// generation so loads that started earlier do not write their results back.
type Store[V any] struct {
	ttl         time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	flight      resilience.SingleFlight[V]

	mu         sync.Mutex
	items      map[string]item[V]
	generation uint64
	hits       uint64
	misses     uint64
}

func NewStore[V any](ttl time.Duration, opts ...Option) *Store[V] {
	o := options{loadTimeout: DefaultLoadTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[V]{
		ttl:         ttl,
		loadTimeout: o.loadTimeout,
		now:         time.Now,
		items:       make(map[string]item[V]),
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(key)
}

func (s *Store[V]) lookup(key string) (V, bool) {
	it, ok := s.items[key]
	if ok && !it.expires.IsZero() && !s.now().Before(it.expires) {
		delete(s.items, key)
		ok = false
	}
	if !ok {
		s.misses++
		var zero V
		return zero, false
	}
	s.hits++
	return it.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}
	s.mu.Lock()
	s.store(key, value)
	s.mu.Unlock()
}

func (s *Store[V]) store(key string, value V) {
	it := item[V]{value: value}
	if s.ttl > 0 {
		it.expires = s.now().Add(s.ttl)
	}
	s.items[key] = it
}

func (s *Store[V]) Delete(ctx context.Context, key string) {
	s.DeleteFunc(ctx, func(k string) bool { return k == key })
}

func (s *Store[V]) DeletePrefix(ctx context.Context, prefix string) {
	if prefix == "" {
		return
	}
	s.DeleteFunc(ctx, func(k string) bool { return strings.HasPrefix(k, prefix) })
}

// DeleteFunc drops every key match reports true for.
func (s *Store[V]) DeleteFunc(_ context.Context, match func(key string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.items {
		if match(k) {
			delete(s.items, k)
		}
	}
	s.generation++
}

func (s *Store[V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Hits: s.hits, Misses: s.misses, Entries: len(s.items)}
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers. Failed loads are not cached. An empty key bypasses the
// cache. A collapsed load keeps the caller's values but not its cancellation;
// it runs until the store's load timeout instead.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("cache loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	s.mu.Lock()
	value, ok := s.lookup(key)
	s.mu.Unlock()
	if ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (V, error) {
		s.mu.Lock()
		if cached, ok := s.items[key]; ok && (cached.expires.IsZero() || s.now().Before(cached.expires)) {
			s.mu.Unlock()
			return cached.value, nil
		}
		gen := s.generation
		s.mu.Unlock()

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		loaded, err := loader(loadCtx)
		if err != nil {
			return zero, err
		}

		s.mu.Lock()
		if s.generation == gen {
			s.store(key, loaded)
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return value, nil
}
