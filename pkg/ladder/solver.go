package ladder

import (
	"weaver/pkg/dictionary"
	"weaver/pkg/serrors"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// queueItem is a discovered word waiting to be expanded.
type queueItem struct {
	word  string
	depth int
}

// search is the per-call traversal state. It never outlives FindShortestPath.
type search struct {
	dict   *dictionary.Dictionary
	target string
	opts   Options
	queue  []queueItem
	// parent doubles as the visited set; start maps to "".
	parent map[string]string
}

// FindShortestPath returns a shortest ladder from start to target.
//
// Both words must already be normalized (uppercase A-Z), have the dictionary's
// word length and be dictionary members; otherwise ErrInvalidInput is returned
// before any traversal. A nil Path with a nil error means the words are not
// connected. start == target yields the single-word path.
func FindShortestPath(start, target string, dict *dictionary.Dictionary, opts ...Option) (Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := validate(start, target, dict); err != nil {
		return nil, err
	}

	if start == target {
		return Path{start}, nil
	}

	s := &search{
		dict:   dict,
		target: target,
		opts:   o,
		queue:  make([]queueItem, 0, 64),
		parent: make(map[string]string, 64),
	}
	s.parent[start] = ""
	s.queue = append(s.queue, queueItem{word: start})

	return s.run()
}

func (s *search) run() (Path, error) {
	for head := 0; head < len(s.queue); head++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err //nolint: wrapcheck
		}
		if s.opts.MaxExpansions > 0 && head >= s.opts.MaxExpansions {
			return nil, serrors.With(ErrBudgetExceeded, "search stopped after %d expansions", head)
		}

		item := s.queue[head]
		s.queue[head] = queueItem{}
		s.opts.OnExpand(item.word, item.depth)

		if s.expand(item) {
			return s.pathToTarget(), nil
		}
	}

	return nil, nil
}

// expand discovers the unvisited dictionary neighbors of item in generation
// order and reports whether the target was among them. Words are marked
// visited on discovery so each word is enqueued at most once.
func (s *search) expand(item queueItem) bool {
	found := false
	forEachNeighbor(item.word, s.dict, func(candidate string) bool {
		if _, seen := s.parent[candidate]; seen {
			return true
		}

		s.parent[candidate] = item.word
		if candidate == s.target {
			found = true

			return false
		}
		s.queue = append(s.queue, queueItem{word: candidate, depth: item.depth + 1})

		return true
	})

	return found
}

func (s *search) pathToTarget() Path {
	var rev Path
	for w := s.target; w != ""; w = s.parent[w] {
		rev = append(rev, w)
	}

	path := make(Path, len(rev))
	for i, w := range rev {
		path[len(rev)-1-i] = w
	}

	return path
}

func validate(start, target string, dict *dictionary.Dictionary) error {
	if dict.Len() == 0 {
		return serrors.With(ErrInvalidInput, "dictionary is empty")
	}
	if start == "" || target == "" {
		return serrors.With(ErrInvalidInput, "start and target words are required")
	}

	n := dict.WordLength()
	if len(start) != n || len(target) != n {
		return serrors.With(ErrInvalidInput, "both words must be exactly %d letters long", n)
	}

	for _, w := range [...]string{start, target} {
		if !dictionary.IsWord(w) {
			return serrors.With(ErrInvalidInput, "%q must contain only the letters A-Z", w)
		}
		if !dict.Contains(w) {
			return serrors.With(ErrInvalidInput, "%q is not in the word list", w)
		}
	}

	return nil
}

// Neighbors returns the dictionary members one substitution away from word,
// in generation order (position ascending, then letter A-Z).
func Neighbors(word string, dict *dictionary.Dictionary) []string {
	var out []string
	forEachNeighbor(word, dict, func(candidate string) bool {
		out = append(out, candidate)

		return true
	})

	return out
}

// forEachNeighbor calls fn for every dictionary member one substitution away
// from word, in generation order, until fn returns false.
func forEachNeighbor(word string, dict *dictionary.Dictionary, fn func(string) bool) {
	buf := []byte(word)
	for i := range buf {
		orig := buf[i]
		for j := 0; j < len(alphabet); j++ {
			if alphabet[j] == orig {
				continue
			}
			buf[i] = alphabet[j]
			if candidate := string(buf); dict.Contains(candidate) && !fn(candidate) {
				return
			}
		}
		buf[i] = orig
	}
}
