// Package metrics holds the application's shared metric definitions.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "weaver"

// Solve outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeInvalid  = "invalid"
	OutcomeTimeout  = "timeout"
	OutcomeBudget   = "budget"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
	OutcomeCanceled = "canceled"
)

// Solver records ladder search metrics. A nil *Solver records nothing.
type Solver struct {
	duration   metric.Float64Histogram
	outcomes   metric.Int64Counter
	expansions metric.Int64Counter
}

// NewSolver registers the solver instruments on mp. A nil provider yields
// no-op instruments.
func NewSolver(mp metric.MeterProvider) (*Solver, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	duration, err := meter.Float64Histogram("weaver.solve.duration",
		metric.WithDescription("Ladder search latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create solve duration histogram: %w", err)
	}

	outcomes, err := meter.Int64Counter("weaver.solve.outcomes",
		metric.WithDescription("Ladder searches by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create solve outcome counter: %w", err)
	}

	expansions, err := meter.Int64Counter("weaver.solve.expansions",
		metric.WithDescription("Words dequeued by ladder searches"))
	if err != nil {
		return nil, fmt.Errorf("could not create expansion counter: %w", err)
	}

	return &Solver{
		duration:   duration,
		outcomes:   outcomes,
		expansions: expansions,
	}, nil
}

// Record adds one finished search.
func (s *Solver) Record(ctx context.Context, outcome string, expansions int, took time.Duration) {
	if s == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	s.duration.Record(ctx, took.Seconds(), attrs)
	s.outcomes.Add(ctx, 1, attrs)
	if expansions > 0 {
		s.expansions.Add(ctx, int64(expansions))
	}
}

// CacheStats reports cumulative path cache lookups.
type CacheStats interface {
	Stats() (hits, misses int64)
}

// RegisterCacheStats exports the counters of c as observable counters on mp.
func RegisterCacheStats(mp metric.MeterProvider, c CacheStats) error {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	hits, err := meter.Int64ObservableCounter("weaver.cache.hits",
		metric.WithDescription("Path cache lookups served from the cache"))
	if err != nil {
		return fmt.Errorf("could not create cache hit counter: %w", err)
	}

	misses, err := meter.Int64ObservableCounter("weaver.cache.misses",
		metric.WithDescription("Path cache lookups that required a search"))
	if err != nil {
		return fmt.Errorf("could not create cache miss counter: %w", err)
	}

	if _, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		h, m := c.Stats()
		o.ObserveInt64(hits, h)
		o.ObserveInt64(misses, m)

		return nil
	}, hits, misses); err != nil {
		return fmt.Errorf("could not register cache stats callback: %w", err)
	}

	return nil
}
