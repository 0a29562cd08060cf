// Package worker runs the River client that processes queued ladder queries.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"weaver/internal/config"
	"weaver/internal/weaver"
	"weaver/pkg/logger"
)

const defaultMaxWorkers = 100

// Options configure the River client and the ladder worker.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// MaxConcurrentSolves bounds searches running at the same time.
	MaxConcurrentSolves int64
	// TimeoutSnooze delays the retry of a timed out search.
	TimeoutSnooze time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:          cfg.Solver.MaxWorkers,
		MaxConcurrentSolves: cfg.Solver.MaxConcurrentSolves,
		TimeoutSnooze:       DefaultTimeoutSnooze,
	}
}

// Start builds and starts a River client working ladder jobs from dbPool.
func Start(ctx context.Context, dbPool *pgxpool.Pool, w weaver.Weaver, opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = defaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewLadderWorker(w, opts.MaxConcurrentSolves, opts.TimeoutSnooze))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
