package task

import (
	"reflect"
	"testing"
)

func TestDisallowedEmployeeFields(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"status only", []string{"status"}, nil},
		{"status and description", []string{"status", "description"}, nil},
		{"priority rejected", []string{"status", "priority"}, []string{"priority"}},
		{"assignment rejected", []string{"assignedToId"}, []string{"assignedToId"}},
		{"everything rejected", []string{"title", "dueDate"}, []string{"title", "dueDate"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := DisallowedEmployeeFields(tc.keys)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DisallowedEmployeeFields(%v) = %v, want %v", tc.keys, got, tc.want)
			}
		})
	}
}

func TestSortColumn(t *testing.T) {
	if got := SortColumn("dueDate"); got != "due_date" {
		t.Fatalf("SortColumn(dueDate) = %q", got)
	}
	if got := SortColumn("createdAt"); got != "created_at" {
		t.Fatalf("SortColumn(createdAt) = %q", got)
	}
	// Unknown keys must never pass through to SQL.
	if got := SortColumn("password_hash; DROP TABLE tasks"); got != "created_at" {
		t.Fatalf("SortColumn must fall back to created_at, got %q", got)
	}
}

func TestSortDirection(t *testing.T) {
	if got := SortDirection("asc"); got != "ASC" {
		t.Fatalf("SortDirection(asc) = %q", got)
	}
	for _, raw := range []string{"desc", "", "DESC; --"} {
		if got := SortDirection(raw); got != "DESC" {
			t.Fatalf("SortDirection(%q) = %q, want DESC", raw, got)
		}
	}
}
