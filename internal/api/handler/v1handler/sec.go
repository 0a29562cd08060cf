package v1handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weaver/internal/api/specs/v1specs"
	"weaver/internal/config"
	"weaver/pkg/domain"
	"weaver/pkg/logger"
	"weaver/pkg/serrors"
)

type contextKey string

// UserIDKey is the context key of the authenticated domain.UserID.
const UserIDKey contextKey = "userID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key that signs access tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 signed JWTs whose subject is the user ID.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// NewSecHandler parses the public key in opts. An empty key is an error.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// HandleBearerAuth validates the token and stores the subject as the user ID.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, s.keyFn); err != nil {
		logger.Debug(ctx, "rejected bearer token", zap.String("operation", operationName), zap.Error(err))

		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// GetUserIDFromContext returns the authenticated user, the zero ID when the
// operation is not secured.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

// DisabledSecHandler rejects every bearer token. It stands in for SecHandler
// when no public key is configured so the public endpoints keep working.
type DisabledSecHandler struct{}

// Ensure DisabledSecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = DisabledSecHandler{}

// HandleBearerAuth always fails with ErrUnavailable.
func (DisabledSecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	_ v1specs.BearerAuth) (context.Context, error) {
	return ctx, serrors.With(serrors.ErrUnavailable, "authentication is not configured")
}
