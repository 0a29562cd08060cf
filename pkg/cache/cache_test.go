package cache_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weaver/pkg/cache"
	"weaver/pkg/domain"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	setTTLs []time.Duration
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}

	return b, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setTTLs = append(m.setTTLs, ttl)

	return nil
}

func (m *memStore) DeletePrefix(_ context.Context, prefix string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			n++
		}
	}

	return n, nil
}

var coldWarm = domain.Solution{
	Start:  "COLD",
	Target: "WARM",
	Path:   []string{"COLD", "CORD", "WORD", "WARD", "WARM"},
	Found:  true,
}

func TestCache_GetOrCompute_MissThenHit(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Hour)
	ctx := context.Background()

	calls := 0
	compute := func(context.Context) (domain.Solution, error) {
		calls++

		return coldWarm, nil
	}

	sol, hit, err := c.GetOrCompute(ctx, "fp", "COLD", "WARM", compute)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, coldWarm, sol)

	sol, hit, err = c.GetOrCompute(ctx, "fp", "COLD", "WARM", compute)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, coldWarm, sol)
	require.Equal(t, 1, calls)
	require.Equal(t, []time.Duration{time.Hour}, store.setTTLs)

	hits, misses := c.Stats()
	require.EqualValues(t, 1, hits)
	require.EqualValues(t, 1, misses)
}

func TestCache_GetOrCompute_CachesAbsence(t *testing.T) {
	c := cache.New(newMemStore(), 0)
	ctx := context.Background()
	none := domain.Solution{Start: "COLD", Target: "ZERO"}

	calls := 0
	compute := func(context.Context) (domain.Solution, error) {
		calls++

		return none, nil
	}

	for range 3 {
		sol, _, err := c.GetOrCompute(ctx, "fp", "COLD", "ZERO", compute)
		require.NoError(t, err)
		require.False(t, sol.Found)
	}
	require.Equal(t, 1, calls)
}

func TestCache_GetOrCompute_ErrorsNotCached(t *testing.T) {
	c := cache.New(newMemStore(), time.Minute)
	ctx := context.Background()
	boom := errors.New("boom")

	_, _, err := c.GetOrCompute(ctx, "fp", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
		return domain.Solution{}, boom
	})
	require.ErrorIs(t, err, boom)

	sol, hit, err := c.GetOrCompute(ctx, "fp", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
		return coldWarm, nil
	})
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, coldWarm, sol)
}

func TestCache_GetOrCompute_FingerprintNamespaces(t *testing.T) {
	c := cache.New(newMemStore(), time.Minute)
	ctx := context.Background()

	_, _, err := c.GetOrCompute(ctx, "fp1", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
		return coldWarm, nil
	})
	require.NoError(t, err)

	_, hit, err := c.GetOrCompute(ctx, "fp2", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
		return coldWarm, nil
	})
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCache_GetOrCompute_StoreFailuresDoNotFailSolve(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	c := cache.New(store, time.Minute)

	sol, hit, err := c.GetOrCompute(context.Background(), "fp", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
		return coldWarm, nil
	})
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, coldWarm, sol)
}

func TestCache_GetOrCompute_CollapsesConcurrentQueries(t *testing.T) {
	c := cache.New(newMemStore(), time.Minute)
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func(context.Context) (domain.Solution, error) {
		calls.Add(1)
		<-release

		return coldWarm, nil
	}

	var wg sync.WaitGroup
	results := make(chan domain.Solution, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sol, _, err := c.GetOrCompute(ctx, "fp", "COLD", "WARM", compute)
			if err == nil {
				results <- sol
			}
		}()
	}

	// give the goroutines time to join the flight
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	n := 0
	for sol := range results {
		require.Equal(t, coldWarm, sol)
		n++
	}
	require.Equal(t, 10, n)
	require.LessOrEqual(t, calls.Load(), int32(2))
}

func TestCache_GetOrCompute_CanceledCallerDoesNotFailFlight(t *testing.T) {
	c := cache.New(newMemStore(), time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	var flightErr atomic.Value
	compute := func(ctx context.Context) (domain.Solution, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			flightErr.Store(err)

			return domain.Solution{}, err
		}

		return coldWarm, nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrCompute(leaderCtx, "fp", "COLD", "WARM", compute)
		leaderErr <- err
	}()
	<-started

	type result struct {
		sol domain.Solution
		err error
	}
	follower := make(chan result, 1)
	go func() {
		sol, _, err := c.GetOrCompute(context.Background(), "fp", "COLD", "WARM", func(context.Context) (domain.Solution, error) {
			return domain.Solution{}, errors.New("follower must join the running flight")
		})
		follower <- result{sol: sol, err: err}
	}()

	cancelLeader()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	// let the follower join before the flight completes
	time.Sleep(50 * time.Millisecond)
	close(release)

	res := <-follower
	require.NoError(t, res.err)
	require.Equal(t, coldWarm, res.sol)
	require.Nil(t, flightErr.Load())

	sol, hit, err := c.GetOrCompute(context.Background(), "fp", "COLD", "WARM", compute)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, coldWarm, sol)
}

func TestCache_GetOrCompute_FlightTimeout(t *testing.T) {
	c := cache.New(newMemStore(), time.Minute, cache.WithFlightTimeout(20*time.Millisecond))

	_, _, err := c.GetOrCompute(context.Background(), "fp", "COLD", "WARM", func(ctx context.Context) (domain.Solution, error) {
		<-ctx.Done()

		return domain.Solution{}, ctx.Err()
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCache_Invalidate(t *testing.T) {
	store := newMemStore()
	c := cache.New(store, time.Minute)
	ctx := context.Background()
	compute := func(context.Context) (domain.Solution, error) { return coldWarm, nil }

	_, _, err := c.GetOrCompute(ctx, "fp1", "COLD", "WARM", compute)
	require.NoError(t, err)
	_, _, err = c.GetOrCompute(ctx, "fp2", "COLD", "WARM", compute)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, "fp1"))
	require.Len(t, store.data, 1)
	_, ok := store.data[cache.Key("fp2", "COLD", "WARM")]
	require.True(t, ok)
}

func TestNop(t *testing.T) {
	calls := 0
	compute := func(context.Context) (domain.Solution, error) {
		calls++

		return coldWarm, nil
	}

	for range 2 {
		sol, hit, err := cache.Nop{}.GetOrCompute(context.Background(), "fp", "COLD", "WARM", compute)
		require.NoError(t, err)
		require.False(t, hit)
		require.Equal(t, coldWarm, sol)
	}
	require.Equal(t, 2, calls)
	require.NoError(t, cache.Nop{}.Invalidate(context.Background(), "fp"))
}
