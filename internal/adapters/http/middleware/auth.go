package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/conductorhq/conductor/internal/adapters/http/dto"
	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/user"
	"github.com/conductorhq/conductor/internal/ports"
)

// userKey is the context key for the authenticated user.
type userKey struct{}

// sessionKey is the context key for the raw session token, kept so the
// logout handler can invalidate the session it was called with.
type sessionKey struct{}

// WithUser returns a new context with the authenticated user stored in it.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext extracts the authenticated user from the context.
// Returns nil outside of a session-authenticated route.
func UserFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(userKey{}).(*user.User)
	return u
}

// WithSessionToken returns a new context with the session token stored in it.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, token)
}

// SessionTokenFromContext extracts the session token the request
// authenticated with. Returns an empty string outside of a
// session-authenticated route.
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionKey{}).(string)
	return token
}

// BearerToken extracts the token from the request's Authorization header.
// Returns an empty string when the header is missing or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return auth[len(prefix):]
}

// SessionAuth returns middleware that resolves the Bearer session token to a
// user and stores both on the request context. Requests without a valid
// session receive a 401 and never reach the handler.
func SessionAuth(accounts ports.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				dto.WriteErrorResponse(w, r, fmt.Errorf("missing bearer token: %w", domain.ErrForbidden))
				return
			}

			u, err := accounts.UserFromSession(r.Context(), token)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := WithUser(r.Context(), u)
			ctx = WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
