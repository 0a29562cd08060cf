package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"weaver/internal/weaver"
	"weaver/pkg/logger"
	"weaver/pkg/serrors"
)

// DefaultTimeoutSnooze is how long a job waits before retrying a query whose
// search timed out.
const DefaultTimeoutSnooze = 30 * time.Second

// LadderWorker is a River worker that solves queued ladder queries.
//
// Searches are CPU bound, so a weighted semaphore caps how many run at the
// same time regardless of the queue's MaxWorkers. Jobs whose query has no
// pending ladder left, or that the dictionary rejects, are cancelled. Timed
// out searches are snoozed; every attempt still counts against the ladders'
// MaxAttempts, so a query that always times out ends up failed and its job
// cancelled.
type LadderWorker struct {
	river.WorkerDefaults[weaver.SolveLadderJob]

	weaver weaver.Weaver
	sem    *semaphore.Weighted
	snooze time.Duration
}

// NewLadderWorker constructs a LadderWorker running at most maxConcurrent
// searches at once. Values below one allow a single search.
func NewLadderWorker(w weaver.Weaver, maxConcurrent int64, snooze time.Duration) *LadderWorker {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if snooze <= 0 {
		snooze = DefaultTimeoutSnooze
	}

	return &LadderWorker{
		weaver: w,
		sem:    semaphore.NewWeighted(maxConcurrent),
		snooze: snooze,
	}
}

// Work solves one query and maps errors to River actions.
func (l *LadderWorker) Work(ctx context.Context, job *river.Job[weaver.SolveLadderJob]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("start", job.Args.Start),
		zap.String("target", job.Args.Target))

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire solve slot: %w", err)
	}
	err := l.weaver.Process(ctx, job.Args.Start, job.Args.Target)
	l.sem.Release(1)

	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrConflict):
			logger.Info(ctx, "no pending ladders left, cancelling job")

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrBadRequest):
			logger.Warn(ctx, "query rejected by dictionary", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrTimeout):
			logger.Warn(ctx, "ladder search timed out", zap.Duration("snooze", l.snooze))

			return river.JobSnooze(l.snooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing ladder", zap.Error(err))

		return fmt.Errorf("could not process ladder: %w", err)
	}

	logger.Info(ctx, "ladder solved successfully")

	return nil
}
