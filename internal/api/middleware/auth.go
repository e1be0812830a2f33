package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edvin/customerservice/internal/api/response"
	"github.com/edvin/customerservice/internal/core"
	"github.com/edvin/customerservice/internal/model"
)

type contextKey string

const sessionKey contextKey = "session"

// Auth returns middleware that validates an optional Bearer token and
// injects the resulting session into the context. Requests without an
// Authorization header pass through anonymously; a header that is present
// but malformed or invalid is rejected with 401.
func Auth(authService *core.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				response.WriteError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			session, err := authService.Authenticate(token)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession extracts the session from the request context, or nil for
// anonymous requests.
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionKey).(*model.Session)
	return session
}
