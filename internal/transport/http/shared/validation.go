package shared

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"staffhub/internal/transport/http/api"
)

// Validator collects per-field issues so a response can report them all at
// once instead of failing on the first.
type Validator struct {
	issues map[string]string
}

func NewValidator() *Validator {
	return &Validator{issues: map[string]string{}}
}

func (v *Validator) Add(field, reason string) {
	if _, exists := v.issues[field]; !exists {
		v.issues[field] = reason
	}
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) MinLength(field, value string, min int) {
	if value != "" && len(value) < min {
		v.Add(field, "is too short")
	}
}

// Date parses and records an issue on failure; callers check ok before
// using the value.
func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil {
		v.Add(field, "must be a valid date (YYYY-MM-DD or RFC3339)")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) HasIssues() bool {
	return len(v.issues) > 0
}

// Reject writes a 400 with the collected issues and reports whether it did.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	api.FailWithDetails(w, http.StatusBadRequest, "validation failed", v.issues, requestID)
	return true
}
