package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the insert is
// atomic with the rest of the transaction.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. false means an
	// equivalent unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
