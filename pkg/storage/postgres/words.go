package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"weaver/pkg/storage"
)

const (
	wordsTable = "words"
)

func (p *PgSQL) StoreWords(ctx context.Context, words ...string) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}

	rows := make([]PgWord, 0, len(words))
	for _, w := range words {
		rows = append(rows, PgWord{Word: w, Length: len(w)})
	}

	res, err := p.Builder.Insert(wordsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store words into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count stored words: %w", err)
	}

	return n, nil
}

func (p *PgSQL) Words(ctx context.Context, length int) ([]string, error) {
	var words []string
	if err := p.Builder.From(wordsTable).
		Select("word").
		Where(goqu.I("length").Eq(length)).
		Order(goqu.I("word").Asc()).
		ScanValsContext(ctx, &words); err != nil {
		return nil, fmt.Errorf("could not fetch words from pg: %w", err)
	}

	return words, nil
}

func (p *PgSQL) WordCount(ctx context.Context, length int) (int64, error) {
	count, err := p.Builder.From(wordsTable).
		Where(goqu.I("length").Eq(length)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count words in pg: %w", err)
	}

	return count, nil
}

// WordSource reads a dictionary from the words table. It satisfies
// dictionary.Source.
type WordSource struct {
	Storage storage.WordStorage
	Length  int
}

func (s WordSource) Lines(ctx context.Context) ([]string, error) {
	if s.Storage == nil {
		return nil, errors.New("word source has no storage")
	}

	return s.Storage.Words(ctx, s.Length) //nolint: wrapcheck
}
