package ladder

import (
	"context"

	"weaver/pkg/serrors"
)

// Error kinds returned by the solver.
var (
	// ErrInvalidInput is returned when a query is rejected before traversal:
	// empty words, length mismatch, letters outside A-Z, words missing from the
	// dictionary, an empty dictionary, or an invalid option.
	ErrInvalidInput = serrors.NewKind("INVALID_INPUT")

	// ErrBudgetExceeded is returned when WithMaxExpansions stops a search.
	ErrBudgetExceeded = serrors.NewKind("SEARCH_BUDGET_EXCEEDED")

	// ErrInvalidPath is returned by Path.Validate.
	ErrInvalidPath = serrors.NewKind("INVALID_PATH")
)

// Option configures a single search.
type Option func(*Options)

// Options holds caller-side policy for a search. The zero budget means no limit.
type Options struct {
	// Ctx is polled between queue pops.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of dequeued words.
	MaxExpansions int

	// OnExpand is called for every dequeued word with its distance from start.
	OnExpand func(word string, depth int)

	err error
}

// DefaultOptions returns options with a background context, no budget and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, int) {},
	}
}

// WithContext sets the context whose cancellation aborts the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits how many words the search may dequeue.
//
//	n > 0: stop with ErrBudgetExceeded after n expansions
//	n == 0: no limit
//	n < 0: invalid, reported as ErrInvalidInput
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = serrors.With(ErrInvalidInput, "max expansions cannot be negative (%d)", n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called for every dequeued word.
func WithOnExpand(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
