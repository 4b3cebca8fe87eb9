package leavehandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleRequestRequiresReason(t *testing.T) {
	h := NewHandler(nil, nil)
	body := `{"startDate":"2025-06-02","endDate":"2025-06-04","leaveType":"VACATION"}`
	rec := httptest.NewRecorder()

	// Validation fires before the service; a nil one proves it.
	h.handleRequest(rec, httptest.NewRequest("POST", "/leave", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "reason") {
		t.Errorf("body should name the missing field: %s", rec.Body.String())
	}
}

func TestParseStatus(t *testing.T) {
	if status, ok := parseStatus("APPROVED"); !ok || status == nil {
		t.Error("known status should parse")
	}
	if status, ok := parseStatus(""); !ok || status != nil {
		t.Error("empty status means no filter")
	}
	if _, ok := parseStatus("BOGUS"); ok {
		t.Error("unknown status should fail")
	}
}
