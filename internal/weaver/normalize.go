package weaver

import (
	"weaver/pkg/dictionary"
	"weaver/pkg/serrors"
)

// NormalizeQuery trims and uppercases both words and checks them against
// dict. Failures are ErrBadRequest errors with user facing messages.
func NormalizeQuery(dict *dictionary.Dictionary, rawStart, rawTarget string) (string, string, error) {
	start, target := dictionary.Normalize(rawStart), dictionary.Normalize(rawTarget)

	n := dict.WordLength()
	if len(start) != n || len(target) != n {
		return "", "", serrors.With(serrors.ErrBadRequest, "Both words must be exactly %d letters long", n)
	}

	for _, w := range [...]string{start, target} {
		if err := checkMember(dict, w); err != nil {
			return "", "", err
		}
	}

	return start, target, nil
}

// NormalizeWord is NormalizeQuery for a single word.
func NormalizeWord(dict *dictionary.Dictionary, raw string) (string, error) {
	word := dictionary.Normalize(raw)
	if len(word) != dict.WordLength() {
		return "", serrors.With(serrors.ErrBadRequest, "Please enter a valid %d-letter word first", dict.WordLength())
	}

	if err := checkMember(dict, word); err != nil {
		return "", err
	}

	return word, nil
}

func checkMember(dict *dictionary.Dictionary, word string) error {
	if !dict.Contains(word) {
		return serrors.With(serrors.ErrBadRequest, "%q is not in the word list", word)
	}

	return nil
}
