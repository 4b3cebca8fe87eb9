package shared

import (
	"net/http/httptest"
	"testing"
)

func TestValidatorCollectsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("email", "")
	v.Required("firstName", "Jane")
	v.Email("contact", "not-an-email")
	v.MinLength("password", "abc", 8)

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	if len(v.issues) != 3 {
		t.Fatalf("got %d issues, want 3: %v", len(v.issues), v.issues)
	}
	if _, ok := v.issues["firstName"]; ok {
		t.Error("firstName should not have an issue")
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("clean validator must not reject")
	}

	v.Required("email", " ")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != 400 {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("startDate", "2025-03-01"); !ok {
		t.Error("plain date should parse")
	}
	if _, ok := v.Date("startDate", "2025-03-01T09:00:00Z"); !ok {
		t.Error("RFC3339 date should parse")
	}
	if _, ok := v.Date("endDate", "03/01/2025"); ok {
		t.Error("US-style date should fail")
	}
	if !v.HasIssues() {
		t.Error("failed parse should record an issue")
	}
}
