// Package cache memoizes ladder solutions. Entries are namespaced by the
// dictionary fingerprint, so reloading a different word list never serves a
// stale ladder. Concurrent identical queries are collapsed into one solve.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go PathCache
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"weaver/pkg/domain"
	"weaver/pkg/logger"
)

const keyPrefix = "ladder:"

// ErrMiss is returned by a Store when the key does not exist.
var ErrMiss = errors.New("cache miss")

// ComputeFunc produces a solution on a cache miss.
type ComputeFunc func(ctx context.Context) (domain.Solution, error)

// PathCache looks up solutions by dictionary fingerprint and query.
type PathCache interface {
	// GetOrCompute returns the cached solution or runs compute and stores its
	// result. The bool reports a cache hit. Compute errors are never cached.
	GetOrCompute(ctx context.Context, fingerprint, start, target string, compute ComputeFunc) (domain.Solution, bool, error)
	// Invalidate drops every entry of the given dictionary fingerprint.
	Invalidate(ctx context.Context, fingerprint string) error
}

// Store is the byte-level backend of a Cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}

// Cache is a PathCache backed by a Store.
type Cache struct {
	store         Store
	ttl           time.Duration
	flightTimeout time.Duration
	group         singleflight.Group
	hits          atomic.Int64
	misses        atomic.Int64
}

var _ PathCache = (*Cache)(nil)

// Option configures a Cache.
type Option func(*Cache)

// WithFlightTimeout bounds a shared computation. A flight outlives the
// caller that started it, so without a bound it only stops when compute does.
func WithFlightTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.flightTimeout = d
	}
}

// New returns a Cache writing entries with the given TTL. A zero TTL keeps
// entries until they are invalidated.
func New(store Store, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		ttl:   ttl,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Key returns the store key of a query.
func Key(fingerprint, start, target string) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, fingerprint, start, target)
}

// get is a counted lookup, done once per caller.
func (c *Cache) get(ctx context.Context, key string) (domain.Solution, bool) {
	sol, ok := c.lookup(ctx, key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return sol, ok
}

func (c *Cache) lookup(ctx context.Context, key string) (domain.Solution, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			logger.Warn(ctx, "path cache get failed", zap.String("key", key), zap.Error(err))
		}

		return domain.Solution{}, false
	}

	var sol domain.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		logger.Warn(ctx, "path cache entry is corrupt", zap.String("key", key), zap.Error(err))

		return domain.Solution{}, false
	}

	return sol, true
}

func (c *Cache) set(ctx context.Context, key string, sol domain.Solution) {
	data, err := json.Marshal(sol)
	if err != nil {
		logger.Warn(ctx, "could not marshal solution", zap.String("key", key), zap.Error(err))

		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		logger.Warn(ctx, "path cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) GetOrCompute(ctx context.Context,
	fingerprint, start, target string,
	compute ComputeFunc) (domain.Solution, bool, error) {
	key := Key(fingerprint, start, target)
	if sol, ok := c.get(ctx, key); ok {
		return sol, true, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// the flight is shared, so no single caller may cancel it
		fctx := context.WithoutCancel(ctx)
		if c.flightTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, c.flightTimeout)
			defer cancel()
		}

		// another flight may have filled the entry meanwhile
		if sol, ok := c.lookup(fctx, key); ok {
			return sol, nil
		}

		sol, err := compute(fctx)
		if err != nil {
			return nil, err
		}
		c.set(fctx, key, sol)

		return sol, nil
	})

	select {
	case <-ctx.Done():
		return domain.Solution{}, false, ctx.Err() //nolint: wrapcheck
	case res := <-ch:
		if res.Err != nil {
			return domain.Solution{}, false, res.Err //nolint: wrapcheck
		}

		return res.Val.(domain.Solution), false, nil //nolint: forcetypeassert
	}
}

func (c *Cache) Invalidate(ctx context.Context, fingerprint string) error {
	deleted, err := c.store.DeletePrefix(ctx, keyPrefix+fingerprint+":")
	if err != nil {
		return fmt.Errorf("could not invalidate path cache: %w", err)
	}
	logger.Info(ctx, "path cache invalidated",
		zap.String("fingerprint", fingerprint),
		zap.Int64("keys_deleted", deleted))

	return nil
}

// Stats returns the hit and miss counters since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Nop computes every query and stores nothing. It is used when no cache
// backend is configured.
type Nop struct{}

var _ PathCache = Nop{}

func (Nop) GetOrCompute(ctx context.Context, _, _, _ string, compute ComputeFunc) (domain.Solution, bool, error) {
	sol, err := compute(ctx)

	return sol, false, err
}

func (Nop) Invalidate(context.Context, string) error { return nil }
