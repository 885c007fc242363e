package v1handler

import (
	"context"
	"errors"
	"fmt"
	"govconnect/internal/config"
	"govconnect/internal/session"
	"govconnect/pkg/domain"
	"govconnect/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

// UserIDKey holds the authenticated domain.UserID in the request context.
const UserIDKey ctxKey = "userID"

type SecHandlerOptions struct {
	// Secret signs and verifies HS256 tokens.
	Secret string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		Secret: cfg.Session.TokenSecret,
		TTL:    cfg.Session.TokenTTL,
	}
}

// SecHandler issues and verifies bearer tokens. A token is only accepted while
// its subject is the user of the current session.
type SecHandler struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// MinSecretLength is the shortest accepted signing secret, 256 bits for HS256.
const MinSecretLength = 32

// ErrWeakSecret is returned by NewSecHandler for a missing or short secret.
var ErrWeakSecret = errors.New("token secret must be set to at least 32 bytes")

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || len(opts.Secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &SecHandler{
		key: []byte(opts.Secret),
		ttl: opts.TTL,
		now: time.Now,
	}, nil
}

// Issue signs a token for userID.
func (s *SecHandler) Issue(userID domain.UserID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// HandleBearerAuth verifies token and stores its subject in the context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, userID), nil
}

// Middleware rejects requests without a valid bearer token for the current
// session user.
func (s *SecHandler) Middleware(sessions session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := Handler{}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				h.writeError(w, r, err)

				return
			}

			user, ok := sessions.Current()
			if !ok || user.ID != UserIDFromContext(ctx) {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "session expired"))

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user, zero when there is none.
func UserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
