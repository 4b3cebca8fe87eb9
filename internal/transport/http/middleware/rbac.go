package middleware

import (
	"net/http"
	"slices"

	"staffhub/internal/domain/auth"
	"staffhub/internal/transport/http/api"
)

// RequireRole gates a route to the given roles. An anonymous request is a
// 401, a known principal with the wrong role a 403.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "authentication required", GetRequestID(r.Context()))
				return
			}
			if !slices.Contains(roles, principal.Role) {
				api.Fail(w, http.StatusForbidden, "insufficient permissions", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
