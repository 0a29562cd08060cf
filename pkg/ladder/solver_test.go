package ladder_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"weaver/pkg/dictionary"
	"weaver/pkg/ladder"
)

func miniDict(t testing.TB) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.Load([]string{"COLD", "CORD", "CARD", "WARD", "WARM", "WORD"}, 4)
	require.NoError(t, err)

	return d
}

func bundledDict(t testing.TB) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.LoadFrom(context.Background(), dictionary.EmbeddedSource{}, dictionary.DefaultWordLength)
	require.NoError(t, err)

	return d
}

func TestFindShortestPath_ColdToWarm(t *testing.T) {
	d := miniDict(t)

	path, err := ladder.FindShortestPath("COLD", "WARM", d)
	require.NoError(t, err)
	// CORD expands position 0 (WORD) before position 1 (CARD), so the WORD
	// branch reaches WARD first.
	require.Equal(t, ladder.Path{"COLD", "CORD", "WORD", "WARD", "WARM"}, path)
	require.Equal(t, 4, path.Steps())

	// the CARD route has the same length and is a valid ladder too
	require.NoError(t, ladder.Path{"COLD", "CORD", "CARD", "WARD", "WARM"}.Validate(d))
}

func TestFindShortestPath_ColdToWarmWithoutWord(t *testing.T) {
	d, err := dictionary.Load([]string{"COLD", "CORD", "CARD", "WARD", "WARM"}, 4)
	require.NoError(t, err)

	path, err := ladder.FindShortestPath("COLD", "WARM", d)
	require.NoError(t, err)
	require.Equal(t, ladder.Path{"COLD", "CORD", "CARD", "WARD", "WARM"}, path)
}

func TestFindShortestPath_Reflexive(t *testing.T) {
	d := miniDict(t)
	for _, w := range d.Words() {
		path, err := ladder.FindShortestPath(w, w, d)
		require.NoError(t, err)
		require.Equal(t, ladder.Path{w}, path)
		require.Zero(t, path.Steps())
	}
}

func TestFindShortestPath_NoPath(t *testing.T) {
	d, err := dictionary.Load([]string{"COLD", "CORD", "ZZZZ", "ZZZY"}, 4)
	require.NoError(t, err)

	path, err := ladder.FindShortestPath("COLD", "ZZZZ", d)
	require.NoError(t, err, "disconnected words are not an error")
	require.Nil(t, path)
}

func TestFindShortestPath_InvalidInput(t *testing.T) {
	d := miniDict(t)
	empty := &dictionary.Dictionary{}

	cases := []struct {
		name   string
		start  string
		target string
		dict   *dictionary.Dictionary
	}{
		{name: "target not in dictionary", start: "COLD", target: "ZZZZ", dict: d},
		{name: "start not in dictionary", start: "ZZZZ", target: "COLD", dict: d},
		{name: "target too short", start: "COLD", target: "WAR", dict: d},
		{name: "start too long", start: "COLDS", target: "WARM", dict: d},
		{name: "empty start", start: "", target: "WARM", dict: d},
		{name: "empty target", start: "COLD", target: "", dict: d},
		{name: "not normalized", start: "cold", target: "WARM", dict: d},
		{name: "outside alphabet", start: "C0LD", target: "WARM", dict: d},
		{name: "nil dictionary", start: "COLD", target: "WARM", dict: nil},
		{name: "empty dictionary", start: "COLD", target: "WARM", dict: empty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := ladder.FindShortestPath(tc.start, tc.target, tc.dict)
			require.Nil(t, path)
			require.ErrorIs(t, err, ladder.ErrInvalidInput)
		})
	}
}

func TestFindShortestPath_InvalidOption(t *testing.T) {
	_, err := ladder.FindShortestPath("COLD", "WARM", miniDict(t), ladder.WithMaxExpansions(-1))
	require.ErrorIs(t, err, ladder.ErrInvalidInput)
}

func TestFindShortestPath_Deterministic(t *testing.T) {
	d := bundledDict(t)

	first, err := ladder.FindShortestPath("COLD", "WARM", d)
	require.NoError(t, err)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		again, err := ladder.FindShortestPath("COLD", "WARM", d)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestFindShortestPath_ValidAndSimple(t *testing.T) {
	d := bundledDict(t)
	pairs := [][2]string{
		{"COLD", "WARM"},
		{"HEAD", "TAIL"},
		{"LOVE", "HATE"},
		{"WORK", "PLAY"},
		{"MILK", "WINE"},
	}

	for _, p := range pairs {
		path, err := ladder.FindShortestPath(p[0], p[1], d)
		require.NoError(t, err)
		if path == nil {
			continue
		}
		require.Equal(t, p[0], path[0])
		require.Equal(t, p[1], path[len(path)-1])
		require.NoError(t, path.Validate(d), "%s -> %s", p[0], p[1])
	}
}

// referenceDistance computes graph distances with an explicit adjacency list
// built by pairwise comparison, independent of the solver's neighbor generation.
func referenceDistance(words []string, start string) map[string]int {
	adj := make(map[string][]string, len(words))
	for i := range words {
		for j := i + 1; j < len(words); j++ {
			if ladder.Distance(words[i], words[j]) == 1 {
				adj[words[i]] = append(adj[words[i]], words[j])
				adj[words[j]] = append(adj[words[j]], words[i])
			}
		}
	}

	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		for _, n := range adj[w] {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[w] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist
}

func randomDict(t *testing.T, rnd *rand.Rand, letters string, length, size int) *dictionary.Dictionary {
	t.Helper()
	lines := make([]string, 0, size)
	for i := 0; i < size; i++ {
		b := make([]byte, length)
		for j := range b {
			b[j] = letters[rnd.Intn(len(letters))]
		}
		lines = append(lines, string(b))
	}
	d, err := dictionary.Load(lines, length)
	require.NoError(t, err)

	return d
}

func TestFindShortestPath_OptimalOnSyntheticDictionaries(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		d := randomDict(t, rnd, "ABCDE", 3, 40)
		words := d.Words()
		start := words[rnd.Intn(len(words))]
		dist := referenceDistance(words, start)

		for _, target := range words {
			path, err := ladder.FindShortestPath(start, target, d)
			require.NoError(t, err)

			want, reachable := dist[target]
			if !reachable {
				require.Nil(t, path, "%s -> %s should be disconnected", start, target)

				continue
			}
			require.NotNil(t, path, "%s -> %s should be connected", start, target)
			require.Equal(t, want, path.Steps(), "%s -> %s", start, target)
			require.NoError(t, path.Validate(d))
		}
	}
}

func TestFindShortestPath_OptimalOnBundledDictionary(t *testing.T) {
	if testing.Short() {
		t.Skip("builds an explicit graph over the bundled list")
	}

	d := bundledDict(t)
	dist := referenceDistance(d.Words(), "COLD")

	for _, target := range []string{"WARM", "CORD", "HEAT", "BOLD", "ZERO", "JAZZ"} {
		if !d.Contains(target) {
			continue
		}
		path, err := ladder.FindShortestPath("COLD", target, d)
		require.NoError(t, err)

		want, ok := dist[target]
		if !ok {
			require.Nil(t, path)

			continue
		}
		require.Equal(t, want, path.Steps(), "COLD -> %s", target)
	}
}

func TestFindShortestPath_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path, err := ladder.FindShortestPath("COLD", "WARM", miniDict(t), ladder.WithContext(ctx))
	require.Nil(t, path)
	require.ErrorIs(t, err, context.Canceled)

	// the trivial path needs no traversal
	path, err = ladder.FindShortestPath("COLD", "COLD", miniDict(t), ladder.WithContext(ctx))
	require.NoError(t, err)
	require.Equal(t, ladder.Path{"COLD"}, path)
}

func TestFindShortestPath_Budget(t *testing.T) {
	d := miniDict(t)

	_, err := ladder.FindShortestPath("COLD", "WARM", d, ladder.WithMaxExpansions(1))
	require.ErrorIs(t, err, ladder.ErrBudgetExceeded)

	path, err := ladder.FindShortestPath("COLD", "WARM", d, ladder.WithMaxExpansions(100))
	require.NoError(t, err)
	require.Len(t, path, 5)

	path, err = ladder.FindShortestPath("COLD", "WARM", d, ladder.WithMaxExpansions(0))
	require.NoError(t, err)
	require.Len(t, path, 5)
}

func TestFindShortestPath_OnExpand(t *testing.T) {
	var words []string
	var depths []int
	hook := ladder.WithOnExpand(func(word string, depth int) {
		words = append(words, word)
		depths = append(depths, depth)
	})

	_, err := ladder.FindShortestPath("COLD", "WARM", miniDict(t), hook)
	require.NoError(t, err)
	require.Equal(t, []string{"COLD", "CORD", "WORD", "CARD", "WARD"}, words)
	require.Equal(t, []int{0, 1, 2, 2, 3}, depths)
}

func TestFindShortestPath_ConcurrentCallsShareDictionary(t *testing.T) {
	d := bundledDict(t)
	want, err := ladder.FindShortestPath("COLD", "WARM", d)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ladder.FindShortestPath("COLD", "WARM", d)
			if err != nil {
				t.Errorf("unexpected error: %v", err)

				return
			}
			if len(got) != len(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestNeighbors(t *testing.T) {
	d := miniDict(t)
	require.Equal(t, []string{"WORD", "CARD", "COLD"}, ladder.Neighbors("CORD", d))
	require.Empty(t, ladder.Neighbors("WARM", &dictionary.Dictionary{}))
}

func TestNeighbors_MatchesExpansionOrder(t *testing.T) {
	d, err := dictionary.Load([]string{"COLD", "CORD", "CARD", "WARD", "WARM", "WORD", "ECHO"}, 4)
	require.NoError(t, err)

	var firstLayer []string
	path, err := ladder.FindShortestPath("CORD", "ECHO", d, ladder.WithOnExpand(func(word string, depth int) {
		if depth == 1 {
			firstLayer = append(firstLayer, word)
		}
	}))
	require.NoError(t, err)
	require.Nil(t, path)
	require.Equal(t, ladder.Neighbors("CORD", d), firstLayer)
}

func BenchmarkFindShortestPath_Bundled(b *testing.B) {
	d := bundledDict(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.FindShortestPath("COLD", "WARM", d)
	}
}
