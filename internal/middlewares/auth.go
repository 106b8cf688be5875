package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// SessionResolver resolves an opaque session token to a user id. A missing
// or expired session is reported via ok=false, not an error.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// UserLoader loads the user record behind a resolved session.
type UserLoader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// sessionCookie is the cookie fallback for clients that do not send an
// Authorization header.
const sessionCookie = "session"

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// TokenFromRequest extracts the session token from the Authorization
// header or the session cookie.
func TokenFromRequest(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], true
		}
		return "", false
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// SessionMiddleware resolves the request's session token and attaches the
// authenticated user to the context. Requests without a valid session pass
// through unauthenticated — "no session" is a normal request shape.
func SessionMiddleware(sessions SessionResolver, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := TokenFromRequest(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok, err := sessions.Resolve(ctx, token)
			if err != nil || !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil || user == nil {
				logger.Log.Errorw("failed to load session user", "user_id", userID, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
