package v1specs

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"weaver/pkg/metrics"
)

const (
	instrumentationName = "weaver/internal/api/specs/v1specs"

	defaultMaxBodyBytes = 1 << 20
	maxListLimit        = 100
)

var errMissingToken = errors.New("missing bearer token")

type config struct {
	prefix         string
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	maxBodyBytes   int64
}

// Option configures a Server.
type Option func(*config)

// WithPathPrefix mounts every route below prefix, e.g. "/v1".
func WithPathPrefix(prefix string) Option {
	return func(c *config) { c.prefix = strings.TrimRight(prefix, "/") }
}

// WithMeterProvider sets the provider of request metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// WithTracerProvider sets the provider of request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

// WithMaxBodyBytes limits request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// Server routes v1 requests to a Handler.
type Server struct {
	h   Handler
	sec SecurityHandler
	cfg config
	mux *http.ServeMux

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// route is one operation bound to a method and path.
type route struct {
	op      OperationName
	secured bool
	serve   func(ctx context.Context, r *http.Request) (Encoder, int, error)
}

// NewServer creates a Server for h, authenticating secured operations with sec.
func NewServer(h Handler, sec SecurityHandler, opts ...Option) (*Server, error) {
	cfg := config{
		meterProvider:  noop.NewMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
		maxBodyBytes:   defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	requests, err := meter.Int64Counter("weaver.http.requests",
		metric.WithDescription("v1 API requests by operation and status"))
	if err != nil {
		return nil, errors.Wrap(err, "create request counter")
	}
	duration, err := meter.Float64Histogram("weaver.http.duration",
		metric.WithDescription("v1 API request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, errors.Wrap(err, "create request duration histogram")
	}

	s := &Server{
		h:        h,
		sec:      sec,
		cfg:      cfg,
		mux:      http.NewServeMux(),
		tracer:   cfg.tracerProvider.Tracer(instrumentationName),
		requests: requests,
		duration: duration,
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.register("GET", "/dictionary", route{op: GetDictionaryOperation, serve: s.handleGetDictionary})
	s.register("GET", "/words/{word}", route{op: CheckWordOperation, serve: s.handleCheckWord})
	s.register("GET", "/share", route{op: ShareWordOperation, serve: s.handleShareWord})
	s.register("POST", "/solve", route{op: SolveOperation, serve: s.handleSolve})
	s.register("POST", "/sentiment", route{op: SentimentOperation, serve: s.handleSentiment})
	s.register("POST", "/ladders", route{op: CreateLadderOperation, secured: true, serve: s.handleCreateLadder})
	s.register("GET", "/ladders", route{op: ListLaddersOperation, secured: true, serve: s.handleListLadders})
	s.register("GET", "/ladders/{id}", route{op: GetLadderOperation, secured: true, serve: s.handleGetLadder})
	s.register("DELETE", "/ladders/{id}", route{op: DeleteLadderOperation, secured: true, serve: s.handleDeleteLadder})
}

func (s *Server) register(method, path string, rt route) {
	s.mux.HandleFunc(method+" "+s.cfg.prefix+path, func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, rt)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, rt route) {
	ctx, span := s.tracer.Start(r.Context(), rt.op, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	began := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.maxBodyBytes)
	status := s.run(ctx, w, r, rt)

	attrs := metric.WithAttributes(
		attribute.String("operation", rt.op),
		attribute.Int("status", status),
	)
	s.requests.Add(ctx, 1, attrs)
	s.duration.Record(ctx, time.Since(began).Seconds(), attrs)

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

func (s *Server) run(ctx context.Context, w http.ResponseWriter, r *http.Request, rt route) int {
	if rt.secured {
		token, ok := bearerToken(r)
		if !ok {
			return s.writeError(ctx, w, &SecurityError{OperationName: rt.op, Security: "BearerAuth", Err: errMissingToken})
		}

		var err error
		ctx, err = s.sec.HandleBearerAuth(ctx, rt.op, BearerAuth{Token: token})
		if err != nil {
			return s.writeError(ctx, w, &SecurityError{OperationName: rt.op, Security: "BearerAuth", Err: err})
		}
	}

	res, status, err := rt.serve(ctx, r)
	if err != nil {
		return s.writeError(ctx, w, err)
	}
	if res == nil {
		w.WriteHeader(status)

		return status
	}
	writeJSON(w, status, res)

	return status
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) int {
	es := s.h.NewError(ctx, err)
	writeJSON(w, es.StatusCode, &es.Response)

	return es.StatusCode
}

func writeJSON(w http.ResponseWriter, status int, res Encoder) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(prefix):])

	return token, token != ""
}

type decoder interface {
	Decode(d *jx.Decoder) error
}

func decodeBody(r *http.Request, op OperationName, req decoder) error {
	buf, err := io.ReadAll(r.Body)
	if err != nil {
		return &DecodeRequestError{OperationName: op, Err: errors.Wrap(err, "read body")}
	}
	if err := req.Decode(jx.DecodeBytes(buf)); err != nil {
		return &DecodeRequestError{OperationName: op, Err: err}
	}

	return nil
}

func (s *Server) handleGetDictionary(ctx context.Context, _ *http.Request) (Encoder, int, error) {
	res, err := s.h.GetDictionary(ctx)
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleCheckWord(ctx context.Context, r *http.Request) (Encoder, int, error) {
	res, err := s.h.CheckWord(ctx, CheckWordParams{Word: r.PathValue("word")})
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleShareWord(ctx context.Context, r *http.Request) (Encoder, int, error) {
	word := r.URL.Query().Get("word1")
	if word == "" {
		return nil, 0, &DecodeParamsError{OperationName: ShareWordOperation, Name: "word1", Err: errors.New("required")}
	}

	res, err := s.h.ShareWord(ctx, ShareWordParams{Word1: word})
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleSolve(ctx context.Context, r *http.Request) (Encoder, int, error) {
	var req SolveRequest
	if err := decodeBody(r, SolveOperation, &req); err != nil {
		return nil, 0, err
	}

	res, err := s.h.Solve(ctx, &req)
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleSentiment(ctx context.Context, r *http.Request) (Encoder, int, error) {
	var req SentimentRequest
	if err := decodeBody(r, SentimentOperation, &req); err != nil {
		return nil, 0, err
	}

	res, err := s.h.Sentiment(ctx, &req)
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleCreateLadder(ctx context.Context, r *http.Request) (Encoder, int, error) {
	var req CreateLadderRequest
	if err := decodeBody(r, CreateLadderOperation, &req); err != nil {
		return nil, 0, err
	}

	res, err := s.h.CreateLadder(ctx, &req)
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusAccepted, nil
}

func (s *Server) handleListLadders(ctx context.Context, r *http.Request) (Encoder, int, error) {
	q := r.URL.Query()

	var params ListLaddersParams
	if q.Has("status") {
		params.Status = NewOptString(q.Get("status"))
	}
	if q.Has("cursor") {
		params.Cursor = NewOptString(q.Get("cursor"))
	}
	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			return nil, 0, &DecodeParamsError{OperationName: ListLaddersOperation, Name: "limit", Err: err}
		}
		if limit < 1 || limit > maxListLimit {
			return nil, 0, &DecodeParamsError{
				OperationName: ListLaddersOperation,
				Name:          "limit",
				Err:           errors.Errorf("must be between 1 and %d", maxListLimit),
			}
		}
		params.Limit = NewOptInt(limit)
	}

	res, err := s.h.ListLadders(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func ladderID(r *http.Request, op OperationName) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.UUID{}, &DecodeParamsError{OperationName: op, Name: "id", Err: err}
	}

	return id, nil
}

func (s *Server) handleGetLadder(ctx context.Context, r *http.Request) (Encoder, int, error) {
	id, err := ladderID(r, GetLadderOperation)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.h.GetLadder(ctx, GetLadderParams{ID: id})
	if err != nil {
		return nil, 0, err
	}

	return res, http.StatusOK, nil
}

func (s *Server) handleDeleteLadder(ctx context.Context, r *http.Request) (Encoder, int, error) {
	id, err := ladderID(r, DeleteLadderOperation)
	if err != nil {
		return nil, 0, err
	}

	if err := s.h.DeleteLadder(ctx, DeleteLadderParams{ID: id}); err != nil {
		return nil, 0, err
	}

	return nil, http.StatusNoContent, nil
}
