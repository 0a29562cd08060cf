package weaver

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"weaver/internal/config"
	"weaver/pkg/cache"
	"weaver/pkg/dictionary"
	"weaver/pkg/domain"
	"weaver/pkg/ladder"
	"weaver/pkg/logger"
	"weaver/pkg/metrics"
	"weaver/pkg/serrors"
	"weaver/pkg/storage"
)

const tracerName = "weaver/internal/weaver"

// Options configure search limits, job enqueueing and share links.
type Options struct {
	// PublicURL is the base of share links.
	PublicURL string
	// MaxExpansions caps every search; 0 means unlimited.
	MaxExpansions int
	// SolveTimeout bounds every search; 0 means no timeout beyond ctx.
	SolveTimeout time.Duration
	// MaxAttempts is how often a queued query is retried before its ladders fail.
	MaxAttempts int
	// ResultCacheTTL is the window in which a completed result is reused for
	// new requests of the same query instead of enqueueing another job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PublicURL:      cfg.HTTP.PublicURL,
		MaxExpansions:  cfg.Solver.MaxExpansions,
		SolveTimeout:   cfg.Solver.SolveTimeout,
		MaxAttempts:    cfg.Solver.MaxAttempts,
		ResultCacheTTL: cfg.Solver.ResultCacheTTL,
	}
}

// Deps are the collaborators of the service. Storage may be nil for
// deployments that only solve synchronously; Cache and Metrics default to
// no-ops.
type Deps struct {
	Dictionary *dictionary.Dictionary
	Storage    storage.Storage
	Cache      cache.PathCache
	Metrics    *metrics.Solver
}

type weaver struct {
	options Options
	dict    *dictionary.Dictionary
	storage storage.Storage
	cache   cache.PathCache
	metrics *metrics.Solver
	tracer  trace.Tracer
}

// New creates a Weaver over the given dictionary and collaborators.
func New(deps Deps, options Options) Weaver {
	pathCache := deps.Cache
	if pathCache == nil {
		pathCache = cache.Nop{}
	}

	return &weaver{
		options: options,
		dict:    deps.Dictionary,
		storage: deps.Storage,
		cache:   pathCache,
		metrics: deps.Metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

func (w *weaver) Solve(ctx context.Context, rawStart, rawTarget string) (*domain.Solution, error) {
	start, target, err := NormalizeQuery(w.dict, rawStart, rawTarget)
	if err != nil {
		w.metrics.Record(ctx, metrics.OutcomeInvalid, 0, 0)

		return nil, err
	}

	sol, err := w.solve(ctx, start, target)
	if err != nil {
		return nil, err
	}

	return &sol, nil
}

// solve runs a validated query through the path cache.
func (w *weaver) solve(ctx context.Context, start, target string) (domain.Solution, error) {
	ctx, span := w.tracer.Start(ctx, "weaver.solve", trace.WithAttributes(
		attribute.String("ladder.start", start),
		attribute.String("ladder.target", target),
	))
	defer span.End()

	began := time.Now()
	sol, hit, err := w.cache.GetOrCompute(ctx, w.dict.Fingerprint(), start, target,
		func(ctx context.Context) (domain.Solution, error) {
			return w.search(ctx, start, target)
		})
	if err != nil {
		if serrors.KindOf(err) == nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			// the caller left before a shared search finished
			var outcome string
			outcome, err = mapSearchError(err, time.Since(began))
			w.metrics.Record(ctx, outcome, 0, time.Since(began))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return domain.Solution{}, err
	}

	if hit {
		w.metrics.Record(ctx, metrics.OutcomeCacheHit, 0, time.Since(began))
	}
	span.SetAttributes(
		attribute.Bool("ladder.cache_hit", hit),
		attribute.Bool("ladder.found", sol.Found),
		attribute.Int("ladder.steps", sol.Steps()),
	)

	return sol, nil
}

// search runs the solver with the configured limits and records its outcome.
func (w *weaver) search(ctx context.Context, start, target string) (domain.Solution, error) {
	if w.options.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.options.SolveTimeout)
		defer cancel()
	}

	expansions := 0
	began := time.Now()
	path, err := ladder.FindShortestPath(start, target, w.dict,
		ladder.WithContext(ctx),
		ladder.WithMaxExpansions(w.options.MaxExpansions),
		ladder.WithOnExpand(func(string, int) { expansions++ }),
	)
	took := time.Since(began)
	if err != nil {
		outcome, mapped := mapSearchError(err, took)
		w.metrics.Record(ctx, outcome, expansions, took)

		return domain.Solution{}, mapped
	}

	sol := domain.Solution{
		Start:       start,
		Target:      target,
		Path:        path,
		Found:       path != nil,
		Fingerprint: w.dict.Fingerprint(),
	}

	outcome := metrics.OutcomeFound
	if !sol.Found {
		outcome = metrics.OutcomeNoPath
	}
	w.metrics.Record(ctx, outcome, expansions, took)

	logger.Debug(ctx, "ladder search finished",
		zap.String("start", start),
		zap.String("target", target),
		zap.Bool("found", sol.Found),
		zap.Int("expansions", expansions),
		zap.Duration("took", took))

	return sol, nil
}

func mapSearchError(err error, took time.Duration) (string, error) {
	switch {
	case errors.Is(err, ladder.ErrInvalidInput):
		return metrics.OutcomeInvalid, serrors.Wrap(serrors.ErrBadRequest, err, "invalid query")
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout, serrors.Wrap(serrors.ErrTimeout, err, "search timed out after %s", took.Round(time.Millisecond))
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeCanceled, serrors.Wrap(serrors.ErrCanceled, err, "search canceled")
	case errors.Is(err, ladder.ErrBudgetExceeded):
		return metrics.OutcomeBudget, serrors.Wrap(serrors.ErrUnavailable, err, "search budget exhausted")
	default:
		return metrics.OutcomeError, fmt.Errorf("could not search ladder: %w", err)
	}
}

func (w *weaver) Check(_ context.Context, raw string) (*domain.WordCheck, error) {
	word := dictionary.Normalize(raw)
	if word == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "word is required")
	}

	return &domain.WordCheck{
		Word:  word,
		Valid: w.dict.Contains(word),
	}, nil
}

func (w *weaver) ShareURL(_ context.Context, raw string) (string, error) {
	word, err := NormalizeWord(w.dict, raw)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(w.options.PublicURL)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "invalid public URL")
	}
	q := u.Query()
	q.Set("word1", word)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (w *weaver) DictionaryInfo(context.Context) domain.DictionaryInfo {
	return domain.DictionaryInfo{
		WordLength:  w.dict.WordLength(),
		Size:        w.dict.Len(),
		Fingerprint: w.dict.Fingerprint(),
	}
}
