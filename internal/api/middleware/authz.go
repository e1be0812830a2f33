package middleware

import (
	"net/http"

	"github.com/edvin/customerservice/internal/api/response"
)

// RequireAuthority returns middleware that only admits sessions holding the
// named authority.
func RequireAuthority(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetSession(r.Context()).HasAuthority(name) {
				response.WriteError(w, http.StatusForbidden, "access denied: requires authority "+name)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
