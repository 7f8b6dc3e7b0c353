package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vietts/insicuri/pkg/e"
)

type ctxKey string

const userIDKey ctxKey = "auth:user_id"

// Middleware parses an optional Bearer token and stores the subject in
// the request context. A missing header passes through anonymously;
// whether identity is required is each operation's decision. A present
// but invalid token is rejected outright.
func Middleware(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			userID, err := parseSubject(raw, secret)
			if err != nil {
				logger.Warn("invalid bearer token", slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseSubject(raw, secret string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}

// UserID extracts the authenticated user from the context, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUser injects an identity directly; used by tests.
func WithUser(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// Identity is the collaborator the submission orchestrator consults:
// "current authenticated user id, or none".
type Identity struct{}

func (Identity) CurrentUser(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserID(ctx); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, e.ErrUnauthenticated
}
