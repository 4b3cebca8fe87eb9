package leave

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNumberOfDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2025, 3, 1), date(2025, 3, 1), 1},
		{"three days", date(2025, 3, 1), date(2025, 3, 3), 3},
		{"across month boundary", date(2025, 3, 30), date(2025, 4, 2), 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := NumberOfDays(tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NumberOfDays = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNumberOfDaysInvalid(t *testing.T) {
	if _, err := NumberOfDays(date(2025, 3, 5), date(2025, 3, 4)); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestValidateRequest(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := ValidateRequest(date(2025, 3, 10), date(2025, 3, 12), now); err != nil {
		t.Fatalf("unexpected error for future range: %v", err)
	}
	if err := ValidateRequest(date(2025, 3, 12), date(2025, 3, 10), now); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if err := ValidateRequest(date(2025, 2, 20), date(2025, 3, 10), now); !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 6), date(2025, 3, 8), false},
		{"partial overlap", date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 4), date(2025, 3, 6), true},
		{"contained", date(2025, 3, 1), date(2025, 3, 10), date(2025, 3, 4), date(2025, 3, 6), true},
		{"touching endpoints", date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 5), date(2025, 3, 8), true},
		{"reversed order disjoint", date(2025, 3, 6), date(2025, 3, 8), date(2025, 3, 1), date(2025, 3, 5), false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}
