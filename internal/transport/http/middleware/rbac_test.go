package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffhub/internal/domain/auth"
)

func requestAs(role auth.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), ctxKeyPrincipal, auth.Principal{UserID: "u1", Role: role})
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(auth.RoleAdmin, auth.RoleManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{"anonymous", httptest.NewRequest(http.MethodGet, "/", nil), http.StatusUnauthorized},
		{"employee", requestAs(auth.RoleEmployee), http.StatusForbidden},
		{"manager", requestAs(auth.RoleManager), http.StatusOK},
		{"admin", requestAs(auth.RoleAdmin), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.req)
			if rec.Code != tt.want {
				t.Errorf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
