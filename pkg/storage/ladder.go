package storage

import (
	"context"
	"time"

	"weaver/pkg/domain"
)

// LadderUpdates is the set of fields applied to ladders by an update.
type LadderUpdates struct {
	// Status is the new status.
	Status domain.LadderStatus
	// Result, when set, replaces the stored solution.
	Result *domain.Solution
	// LastError, when set, replaces the last error. An empty string clears it.
	LastError *string
	// MaxAttempts guards a Failed status: the status only becomes Failed once the
	// incremented attempts reach MaxAttempts. Values <= 0 disable the guard.
	MaxAttempts int
}

// UserLadders is one page of a user's ladders.
type UserLadders struct {
	Ladders []domain.Ladder
	// NextCursor is the created_at of the last row, nil on the last page.
	NextCursor *time.Time
}

// LadderStorage persists ladder requests. Soft-deleted rows are invisible to
// every read.
type LadderStorage interface {
	// StoreLadders inserts ladders and returns the stored rows.
	StoreLadders(ctx context.Context, ladders ...domain.Ladder) ([]domain.Ladder, error)
	// UpdatePendingLadders applies updates to every pending ladder for the
	// query, incrementing attempts.
	UpdatePendingLadders(ctx context.Context, start, target string, updates LadderUpdates) error
	// PendingLadderCount counts pending ladders for the query across users.
	PendingLadderCount(ctx context.Context, start, target string) (int64, error)
	// UpdateLadderByID updates one ladder and returns it, nil when not found.
	UpdateLadderByID(ctx context.Context, id domain.LadderID, updates LadderUpdates) (*domain.Ladder, error)
	// DeleteLadder soft-deletes a user's ladder and returns it, nil when not found.
	DeleteLadder(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error)
	// UserLadders returns ladders created before cursor (zero means newest),
	// newest first. An empty status matches every status.
	UserLadders(ctx context.Context,
		userID domain.UserID,
		status domain.LadderStatus,
		cursor time.Time,
		limit uint) (UserLadders, error)
	// LadderByID fetches a user's ladder, nil when not found.
	LadderByID(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error)
	// LastCompletedLadder returns the most recently updated completed ladder for
	// the query across users whose result was computed over the word list with
	// the given fingerprint, nil when none exists.
	LastCompletedLadder(ctx context.Context, start, target, fingerprint string) (*domain.Ladder, error)
}
