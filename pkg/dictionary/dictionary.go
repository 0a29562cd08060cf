// Package dictionary holds the immutable set of fixed-length words that the
// ladder solver walks. A Dictionary is built once from raw lines and is safe
// for concurrent readers; it exposes no mutation.
package dictionary

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"weaver/pkg/serrors"
)

// DefaultWordLength is the word length used by the bundled word list.
const DefaultWordLength = 4

// ErrLoad is the kind of every dictionary construction failure: an unreadable
// source, an invalid word length, or a source that yields no valid words.
var ErrLoad = serrors.NewKind("DICTIONARY_LOAD") //nolint: gochecknoglobals

// Dictionary is an immutable set of uppercase A-Z words of a single length.
type Dictionary struct {
	words       map[string]struct{}
	wordLength  int
	fingerprint string
}

// Normalize trims surrounding whitespace and uppercases raw user or file input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsWord reports whether s consists only of the letters A-Z.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}

// Load builds a Dictionary from raw lines. Every line is normalized, entries
// whose length differs from wordLength or that contain letters outside A-Z are
// dropped, and duplicates collapse. An empty result is an ErrLoad failure.
func Load(lines []string, wordLength int) (*Dictionary, error) {
	if wordLength < 1 {
		return nil, serrors.With(ErrLoad, "invalid word length %d", wordLength)
	}

	words := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := Normalize(line)
		if len(w) != wordLength || !IsWord(w) {
			continue
		}
		words[w] = struct{}{}
	}

	if len(words) == 0 {
		return nil, serrors.With(ErrLoad, "no %d-letter words found", wordLength)
	}

	d := &Dictionary{
		words:      words,
		wordLength: wordLength,
	}
	d.fingerprint = fingerprint(d.Words(), wordLength)

	return d, nil
}

// Contains reports whether word is a member. The argument must already be
// normalized; no case folding or trimming happens here.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]

	return ok
}

// WordLength returns the fixed length shared by every member.
func (d *Dictionary) WordLength() int {
	if d == nil {
		return 0
	}

	return d.wordLength
}

// Len returns the number of members.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// Words returns the members in ascending order. The slice is a copy.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}

	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	slices.Sort(out)

	return out
}

// Fingerprint identifies the dictionary contents. Two dictionaries with the
// same words and length share a fingerprint.
func (d *Dictionary) Fingerprint() string {
	if d == nil {
		return ""
	}

	return d.fingerprint
}

func fingerprint(sorted []string, wordLength int) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(wordLength)))
	for _, w := range sorted {
		h.Write([]byte{'\n'})
		h.Write([]byte(w))
	}

	return hex.EncodeToString(h.Sum(nil))[:16]
}
