package weaver

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SolveLadderJob contains the arguments for a solve job submitted to River.
// Start, Target and Fingerprint are unique keys so one job serves every user
// asking the same query over the same word list.
type SolveLadderJob struct {
	Start       string `json:"start" river:"unique"`
	Target      string `json:"target" river:"unique"`
	Fingerprint string `json:"fingerprint" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the solve worker.
func (args SolveLadderJob) Kind() string { return "SolveLadderJob" }

// InsertOpts returns the River options that control retries and uniqueness.
func (args SolveLadderJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one job per query in any live or recently completed state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
