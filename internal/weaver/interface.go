// Package weaver is the application service behind the HTTP API, the CLI and
// the background worker. It validates raw user input, runs the ladder solver
// through the path cache and manages asynchronous ladder requests.
package weaver

import (
	"context"

	"weaver/pkg/domain"
)

//go:generate mockgen -package mockweaver -source=interface.go -destination=mock/mockweaver.go *
type Weaver interface {
	// Solve normalizes and validates both words and returns a shortest ladder.
	Solve(ctx context.Context, start, target string) (*domain.Solution, error)
	// Check reports whether a raw word is in the word list.
	Check(ctx context.Context, word string) (*domain.WordCheck, error)
	// ShareURL returns a link that pre-fills word as the start word.
	ShareURL(ctx context.Context, word string) (string, error)
	// DictionaryInfo describes the loaded word list.
	DictionaryInfo(ctx context.Context) domain.DictionaryInfo

	Enqueue(ctx context.Context, userID domain.UserID, start, target string) (*domain.Ladder, error)
	UserLadders(ctx context.Context,
		userID domain.UserID,
		status domain.LadderStatus,
		cursor string,
		limit uint) ([]domain.Ladder, string, error)
	Result(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.LadderID) error

	// Process solves a queued query and updates every pending ladder for it.
	Process(ctx context.Context, start, target string) error
}
