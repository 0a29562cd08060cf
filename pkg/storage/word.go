package storage

import "context"

// WordStorage keeps word lists keyed by word length.
type WordStorage interface {
	// StoreWords inserts words, skipping ones already present, and returns how
	// many rows were added.
	StoreWords(ctx context.Context, words ...string) (int64, error)
	// Words returns every stored word of the given length in ascending order.
	Words(ctx context.Context, length int) ([]string, error)
	// WordCount counts stored words of the given length.
	WordCount(ctx context.Context, length int) (int64, error)
}
