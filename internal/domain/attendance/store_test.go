package attendance

import (
	"testing"
	"time"
)

func TestHistoryWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end *time.Time
		clause     string
		argCount   int
	}{
		{"no bounds", nil, nil, "", 0},
		{"both bounds", &start, &end, " AND date >= $2 AND date <= $3", 2},
		{"start only", &start, nil, " AND date >= $2", 1},
		{"end only", nil, &end, " AND date <= $2", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clause, args := historyWindow(tc.start, tc.end)
			if clause != tc.clause {
				t.Errorf("clause = %q, want %q", clause, tc.clause)
			}
			if len(args) != tc.argCount {
				t.Errorf("got %d args, want %d", len(args), tc.argCount)
			}
		})
	}
}
