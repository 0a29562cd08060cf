// Package v1handler implements the v1 API operations on top of the weaver
// service and the sentiment client.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"weaver/internal/api/specs/v1specs"
	"weaver/internal/weaver"
	"weaver/pkg/logger"
	"weaver/pkg/sentiment"
	"weaver/pkg/serrors"
)

// Deps are the services behind the v1 operations. Sentiment may be nil, in
// which case the sentiment operation reports the service as unavailable.
type Deps struct {
	Weaver    weaver.Weaver
	Sentiment sentiment.Client
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// kindStatus maps semantic error kinds to HTTP status codes and the message
// used when the error carries none.
var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status int
	msg    string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrCanceled:     {statusClientClosedRequest, "request canceled"},
}

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned before a response was written.
const statusClientClosedRequest = 499

// NewError converts any error returned by an operation into an error
// response. Semantic errors keep their kind and message; everything else is
// logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	var (
		secErr    *v1specs.SecurityError
		decodeErr *v1specs.DecodeRequestError
		paramsErr *v1specs.DecodeParamsError
	)
	switch {
	case errors.As(err, &decodeErr):
		return newErrorStatus(http.StatusBadRequest, serrors.ErrBadRequest, "invalid request body: "+decodeErr.Err.Error())
	case errors.As(err, &paramsErr):
		return newErrorStatus(http.StatusBadRequest, serrors.ErrBadRequest,
			"invalid parameter "+paramsErr.Name+": "+paramsErr.Err.Error())
	case errors.As(err, &secErr) && serrors.KindOf(err) == nil:
		return newErrorStatus(http.StatusUnauthorized, serrors.ErrUnauthorized, secErr.Err.Error())
	}

	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return newErrorStatus(http.StatusInternalServerError, serrors.ErrInternal, "internal error")
	}

	msg := mapped.msg
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}
	if mapped.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	return newErrorStatus(mapped.status, kind, msg)
}

func newErrorStatus(status int, kind serrors.Kind, msg string) *v1specs.ErrorStatusCode {
	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}
