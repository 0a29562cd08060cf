package ladder

import (
	"weaver/pkg/dictionary"
	"weaver/pkg/serrors"
)

// Path is an ordered ladder from a start word to a target word.
type Path []string

// Steps returns the number of single-letter changes in the ladder.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Validate checks that p is a non-empty simple ladder over dict: every word is
// a member and consecutive words differ in exactly one position.
func (p Path) Validate(dict *dictionary.Dictionary) error {
	if len(p) == 0 {
		return serrors.With(ErrInvalidPath, "path is empty")
	}

	seen := make(map[string]struct{}, len(p))
	for i, w := range p {
		if !dict.Contains(w) {
			return serrors.With(ErrInvalidPath, "%q at index %d is not in the word list", w, i)
		}
		if _, dup := seen[w]; dup {
			return serrors.With(ErrInvalidPath, "%q repeats at index %d", w, i)
		}
		seen[w] = struct{}{}

		if i > 0 && Distance(p[i-1], w) != 1 {
			return serrors.With(ErrInvalidPath, "%q and %q are not one letter apart", p[i-1], w)
		}
	}

	return nil
}

// Distance returns the number of positions at which a and b differ, or -1 when
// their lengths differ.
func Distance(a, b string) int {
	if len(a) != len(b) {
		return -1
	}

	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}
