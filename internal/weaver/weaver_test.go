package weaver_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"weaver/internal/weaver"
	"weaver/pkg/cache"
	"weaver/pkg/dictionary"
	"weaver/pkg/domain"
	"weaver/pkg/ladder"
	"weaver/pkg/logger"
	"weaver/pkg/serrors"
	"weaver/pkg/storage"
	mockstorage "weaver/pkg/storage/mock"
)

const publicURL = "http://localhost:8080/"

var coldToWarm = []string{"COLD", "CORD", "WORD", "WARD", "WARM"}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testDict(t testing.TB) *dictionary.Dictionary {
	t.Helper()

	dict, err := dictionary.Load([]string{"COLD", "CORD", "CARD", "WARD", "WARM", "WORD", "ECHO"}, 4)
	require.NoError(t, err)

	return dict
}

func testOptions() weaver.Options {
	return weaver.Options{
		PublicURL:      publicURL,
		MaxAttempts:    3,
		ResultCacheTTL: time.Hour,
	}
}

func newTestWeaver(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, weaver.Weaver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := weaver.New(weaver.Deps{Dictionary: testDict(t), Storage: st}, testOptions())

	return ctrl, st, w
}

// memStore is an in-memory cache.Store.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}

	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value

	return nil
}

func (m *memStore) DeletePrefix(context.Context, string) (int64, error) { return 0, nil }

// blockingStore holds the first write of a flight until released.
type blockingStore struct {
	*memStore
	release chan struct{}
	waiting chan struct{}
	once    sync.Once
}

func (b *blockingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	b.once.Do(func() { close(b.waiting) })
	<-b.release

	return b.memStore.Set(ctx, key, value, ttl)
}

func TestWeaver_Solve(t *testing.T) {
	_, _, w := newTestWeaver(t)

	sol, err := w.Solve(context.Background(), " cold", "Warm ")
	require.NoError(t, err)
	require.True(t, sol.Found)
	require.Equal(t, "COLD", sol.Start)
	require.Equal(t, "WARM", sol.Target)
	require.Equal(t, coldToWarm, sol.Path)
	require.Equal(t, 4, sol.Steps())
}

func TestWeaver_Solve_SameWord(t *testing.T) {
	_, _, w := newTestWeaver(t)

	sol, err := w.Solve(context.Background(), "cold", "cold")
	require.NoError(t, err)
	require.True(t, sol.Found)
	require.Equal(t, []string{"COLD"}, sol.Path)
	require.Equal(t, 0, sol.Steps())
}

func TestWeaver_Solve_NoPath(t *testing.T) {
	_, _, w := newTestWeaver(t)

	sol, err := w.Solve(context.Background(), "COLD", "ECHO")
	require.NoError(t, err)
	require.False(t, sol.Found)
	require.Empty(t, sol.Path)
}

func TestWeaver_Solve_InvalidInput(t *testing.T) {
	_, _, w := newTestWeaver(t)

	_, err := w.Solve(context.Background(), "cold", "warmth")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Both words must be exactly 4 letters long")

	_, err = w.Solve(context.Background(), "cold", "zzzz")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, `"ZZZZ" is not in the word list`)
}

func TestWeaver_Solve_Canceled(t *testing.T) {
	_, _, w := newTestWeaver(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Solve(ctx, "cold", "warm")
	require.ErrorIs(t, err, serrors.ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWeaver_Solve_CallerLeavesSharedSearch(t *testing.T) {
	dict := testDict(t)
	st := &memStore{}
	blocked := &blockingStore{memStore: st, release: make(chan struct{}), waiting: make(chan struct{})}
	w := weaver.New(weaver.Deps{Dictionary: dict, Cache: cache.New(blocked, time.Minute)}, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := w.Solve(ctx, "cold", "warm")
		errs <- err
	}()
	<-blocked.waiting
	cancel()

	err := <-errs
	require.ErrorIs(t, err, serrors.ErrCanceled)

	close(blocked.release)
	require.Eventually(t, func() bool {
		_, err := st.Get(context.Background(), cache.Key(dict.Fingerprint(), "COLD", "WARM"))

		return err == nil
	}, time.Second, 10*time.Millisecond, "the shared search still completes and fills the cache")
}

func TestWeaver_Solve_Timeout(t *testing.T) {
	_, _, w := newTestWeaver(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := w.Solve(ctx, "cold", "warm")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWeaver_Solve_Budget(t *testing.T) {
	opts := testOptions()
	opts.MaxExpansions = 1
	w := weaver.New(weaver.Deps{Dictionary: testDict(t)}, opts)

	_, err := w.Solve(context.Background(), "cold", "warm")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(err))
}

func TestWeaver_Solve_UsesCache(t *testing.T) {
	pathCache := cache.New(&memStore{}, time.Minute)
	w := weaver.New(weaver.Deps{Dictionary: testDict(t), Cache: pathCache}, testOptions())

	first, err := w.Solve(context.Background(), "cold", "warm")
	require.NoError(t, err)
	second, err := w.Solve(context.Background(), "COLD", "WARM")
	require.NoError(t, err)

	require.Equal(t, first, second)
	hits, _ := pathCache.Stats()
	require.EqualValues(t, 1, hits)
}

func TestWeaver_Check(t *testing.T) {
	_, _, w := newTestWeaver(t)

	res, err := w.Check(context.Background(), " word ")
	require.NoError(t, err)
	require.Equal(t, &domain.WordCheck{Word: "WORD", Valid: true}, res)

	res, err = w.Check(context.Background(), "wordy")
	require.NoError(t, err)
	require.Equal(t, &domain.WordCheck{Word: "WORDY", Valid: false}, res)

	_, err = w.Check(context.Background(), "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestWeaver_ShareURL(t *testing.T) {
	_, _, w := newTestWeaver(t)

	link, err := w.ShareURL(context.Background(), "cold")
	require.NoError(t, err)
	require.Equal(t, publicURL+"?word1=COLD", link)

	_, err = w.ShareURL(context.Background(), "co")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = w.ShareURL(context.Background(), "zzzz")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestWeaver_DictionaryInfo(t *testing.T) {
	dict := testDict(t)
	w := weaver.New(weaver.Deps{Dictionary: dict}, testOptions())

	info := w.DictionaryInfo(context.Background())
	require.Equal(t, 4, info.WordLength)
	require.Equal(t, 7, info.Size)
	require.Equal(t, dict.Fingerprint(), info.Fingerprint)
}

func TestWeaver_WithoutStorage(t *testing.T) {
	w := weaver.New(weaver.Deps{Dictionary: testDict(t)}, testOptions())

	_, err := w.Enqueue(context.Background(), domain.UserID{}, "cold", "warm")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, w.Process(context.Background(), "COLD", "WARM"), serrors.ErrUnavailable)
}

func TestWeaver_Process_NoPendingLaddersConflicts(t *testing.T) {
	_, st, w := newTestWeaver(t)

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(0), nil)

	err := w.Process(context.Background(), "COLD", "WARM")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestWeaver_Process_CompletesPendingLadders(t *testing.T) {
	_, st, w := newTestWeaver(t)

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(2), nil)
	st.EXPECT().UpdatePendingLadders(gomock.Any(), "COLD", "WARM", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, updates storage.LadderUpdates) error {
			require.Equal(t, domain.LadderStatusCompleted, updates.Status)
			require.NotNil(t, updates.Result)
			require.True(t, updates.Result.Found)
			require.Equal(t, coldToWarm, updates.Result.Path)
			require.Equal(t, testDict(t).Fingerprint(), updates.Result.Fingerprint)
			require.NotNil(t, updates.LastError)
			require.Empty(t, *updates.LastError)

			return nil
		},
	)

	require.NoError(t, w.Process(context.Background(), "COLD", "WARM"))
}

func TestWeaver_Process_TimeoutFailsAfterMaxAttempts(t *testing.T) {
	_, st, w := newTestWeaver(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(1), nil)
	st.EXPECT().UpdatePendingLadders(gomock.Any(), "COLD", "WARM", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, updates storage.LadderUpdates) error {
			require.Equal(t, domain.LadderStatusFailed, updates.Status)
			require.Equal(t, 3, updates.MaxAttempts)
			require.Nil(t, updates.Result)
			require.NotNil(t, updates.LastError)
			require.NotEmpty(t, *updates.LastError)

			return nil
		},
	)

	err := w.Process(ctx, "COLD", "WARM")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestWeaver_Process_UnknownWordFailsImmediately(t *testing.T) {
	_, st, w := newTestWeaver(t)

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "ZZZZ").Return(int64(1), nil)
	st.EXPECT().UpdatePendingLadders(gomock.Any(), "COLD", "ZZZZ", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, updates storage.LadderUpdates) error {
			require.Equal(t, domain.LadderStatusFailed, updates.Status)
			require.Equal(t, 0, updates.MaxAttempts)

			return nil
		},
	)

	err := w.Process(context.Background(), "COLD", "ZZZZ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestWeaver_Process_RejectsCorruptCachedPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	dict := testDict(t)

	corrupt, err := json.Marshal(domain.Solution{
		Start:  "COLD",
		Target: "WARM",
		Path:   []string{"COLD", "WARM"},
		Found:  true,
	})
	require.NoError(t, err)
	store := &memStore{data: map[string][]byte{cache.Key(dict.Fingerprint(), "COLD", "WARM"): corrupt}}
	w := weaver.New(weaver.Deps{Dictionary: dict, Storage: st, Cache: cache.New(store, time.Minute)}, testOptions())

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(1), nil)
	st.EXPECT().UpdatePendingLadders(gomock.Any(), "COLD", "WARM", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, updates storage.LadderUpdates) error {
			require.Equal(t, domain.LadderStatusFailed, updates.Status)
			require.Nil(t, updates.Result)
			require.Equal(t, 3, updates.MaxAttempts)

			return nil
		},
	)

	err = w.Process(context.Background(), "COLD", "WARM")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, ladder.ErrInvalidPath)
}

func TestWeaver_Process_StorageErrors(t *testing.T) {
	_, st, w := newTestWeaver(t)

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(0), errors.New("count err"))
	require.Error(t, w.Process(context.Background(), "COLD", "WARM"))

	st.EXPECT().PendingLadderCount(gomock.Any(), "COLD", "WARM").Return(int64(1), nil)
	st.EXPECT().UpdatePendingLadders(gomock.Any(), "COLD", "WARM", gomock.Any()).Return(errors.New("update err"))
	err := w.Process(context.Background(), "COLD", "WARM")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrConflict)
}
