package weaver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weaver/pkg/domain"
	"weaver/pkg/ladder"
	"weaver/pkg/logger"
	"weaver/pkg/serrors"
	"weaver/pkg/storage"
)

var errNoStorage = serrors.With(serrors.ErrUnavailable, "ladder storage is not configured")

// Enqueue stores a pending ladder for the query and adds a solve job. When a
// job for the same query and word list already exists and has completed, the
// new ladder is completed right away with the last result over that list.
func (w *weaver) Enqueue(ctx context.Context,
	userID domain.UserID,
	rawStart, rawTarget string) (*domain.Ladder, error) {
	if w.storage == nil {
		return nil, errNoStorage
	}

	start, target, err := NormalizeQuery(w.dict, rawStart, rawTarget)
	if err != nil {
		return nil, err
	}

	var l *domain.Ladder
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreLadders(ctx, domain.Ladder{
			UserID: userID,
			Start:  start,
			Target: target,
			Status: domain.LadderStatusPending,
			Result: domain.Solution{Start: start, Target: target},
		})
		if err != nil {
			return fmt.Errorf("could not store ladder: %w", err)
		}
		l = &res[0]

		fingerprint := w.dict.Fingerprint()
		jobAdded, err := tx.AddJob(ctx, SolveLadderJob{
			Start:           start,
			Target:          target,
			Fingerprint:     fingerprint,
			maxAttempts:     w.options.MaxAttempts,
			uniqueJobPeriod: w.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// a unique job for the query already exists
		if !jobAdded {
			last, err := tx.LastCompletedLadder(ctx, start, target, fingerprint)
			if err != nil {
				return fmt.Errorf("could not get last completed ladder: %w", err)
			}

			if last != nil {
				updated, err := tx.UpdateLadderByID(ctx, l.ID, storage.LadderUpdates{
					Status: domain.LadderStatusCompleted,
					Result: &last.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update ladder: %w", err)
				}
				l = updated
			} // else: the queued job completes every pending ladder of the query.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue ladder: %w", err)
	}

	return l, nil
}

// UserLadders returns a page of the user's ladders filtered by status. The
// cursor is the RFC3339 creation time of the last ladder of the previous page.
func (w *weaver) UserLadders(ctx context.Context,
	userID domain.UserID,
	status domain.LadderStatus,
	cursor string,
	limit uint) ([]domain.Ladder, string, error) {
	if w.storage == nil {
		return nil, "", errNoStorage
	}

	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := w.storage.UserLadders(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user ladders: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Ladders, next, nil
}

// Result fetches a single ladder of the user.
func (w *weaver) Result(ctx context.Context, userID domain.UserID, id domain.LadderID) (*domain.Ladder, error) {
	if w.storage == nil {
		return nil, errNoStorage
	}

	res, err := w.storage.LadderByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get ladder: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "ladder not found")
	}

	return res, nil
}

// Delete soft-deletes a ladder of the user. Its job stays queued because
// other users' ladders may depend on it; Process cancels jobs that have no
// pending ladders left.
func (w *weaver) Delete(ctx context.Context, userID domain.UserID, id domain.LadderID) error {
	if w.storage == nil {
		return errNoStorage
	}

	res, err := w.storage.DeleteLadder(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete ladder: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "ladder not found")
	}

	return nil
}

// Process solves a queued query and writes the outcome to every pending
// ladder of it. It returns ErrConflict when nothing is waiting for the query.
// A query the dictionary rejects fails its ladders immediately with an
// ErrBadRequest error; other failures only fail ladders after MaxAttempts.
func (w *weaver) Process(ctx context.Context, start, target string) error {
	if w.storage == nil {
		return errNoStorage
	}

	pending, err := w.storage.PendingLadderCount(ctx, start, target)
	if err != nil {
		return fmt.Errorf("could not count pending ladders: %w", err)
	}
	if pending == 0 {
		return serrors.With(serrors.ErrConflict, "no pending ladders for %s -> %s", start, target)
	}

	sol, err := w.solve(ctx, start, target)
	if err == nil {
		err = w.checkSolution(sol)
	}
	if err != nil {
		lastErr := err.Error()
		updates := storage.LadderUpdates{
			Status:      domain.LadderStatusFailed,
			LastError:   &lastErr,
			MaxAttempts: w.options.MaxAttempts,
		}
		if errors.Is(err, serrors.ErrBadRequest) {
			updates.MaxAttempts = 0
		}

		if uerr := w.storage.UpdatePendingLadders(ctx, start, target, updates); uerr != nil {
			logger.Error(ctx, "could not record ladder failure", zap.Error(uerr))
		}

		return err
	}

	cleared := ""
	if err := w.storage.UpdatePendingLadders(ctx, start, target, storage.LadderUpdates{
		Status:    domain.LadderStatusCompleted,
		Result:    &sol,
		LastError: &cleared,
	}); err != nil {
		return fmt.Errorf("could not complete pending ladders: %w", err)
	}

	logger.Info(ctx, "pending ladders completed",
		zap.Int64("ladders", pending),
		zap.Bool("found", sol.Found),
		zap.Int("steps", sol.Steps()))

	return nil
}

// checkSolution rejects a found path that is not a ladder from Start to
// Target over the loaded dictionary, such as a corrupt cache entry.
func (w *weaver) checkSolution(sol domain.Solution) error {
	if !sol.Found {
		return nil
	}

	path := ladder.Path(sol.Path)
	if err := path.Validate(w.dict); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "solution for %s -> %s is not a valid ladder", sol.Start, sol.Target)
	}
	if path[0] != sol.Start || path[len(path)-1] != sol.Target {
		return serrors.With(serrors.ErrInternal, "solution path does not join %s and %s", sol.Start, sol.Target)
	}

	return nil
}
