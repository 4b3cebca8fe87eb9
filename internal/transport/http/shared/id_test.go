package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func requestWithParam(param, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathIDAcceptsUUID(t *testing.T) {
	rec := httptest.NewRecorder()
	r := requestWithParam("taskID", "3f1e9c1a-7e8d-4f4b-9d2c-5a6b7c8d9e0f")

	id, ok := PathID(rec, r, "taskID")
	if !ok {
		t.Fatal("valid uuid must pass")
	}
	if id != "3f1e9c1a-7e8d-4f4b-9d2c-5a6b7c8d9e0f" {
		t.Fatalf("got %q", id)
	}
}

func TestPathIDRejectsMalformedID(t *testing.T) {
	for _, bad := range []string{"not-a-uuid", "123", "", "3f1e9c1a-7e8d-4f4b-9d2c"} {
		rec := httptest.NewRecorder()
		if _, ok := PathID(rec, requestWithParam("taskID", bad), "taskID"); ok {
			t.Errorf("%q should not pass", bad)
			continue
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: got %d, want 400", bad, rec.Code)
		}
	}
}
