package attendance

import (
	"testing"
	"time"
)

func TestStatusForCheckIn(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"early morning", day(8, 0), StatusPresent},
		{"one minute before cutoff", day(9, 29), StatusPresent},
		{"exactly at cutoff", day(9, 30), StatusPresent},
		{"one minute after cutoff", day(9, 31), StatusLate},
		{"afternoon", day(14, 0), StatusLate},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForCheckIn(tc.now); got != tc.want {
				t.Fatalf("StatusForCheckIn(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestWorkHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     float64
	}{
		{"eight and a half hours", checkIn.Add(8*time.Hour + 30*time.Minute), 8.5},
		{"full day", checkIn.Add(8 * time.Hour), 8},
		{"rounded to two decimals", checkIn.Add(7*time.Hour + 20*time.Minute), 7.33},
		{"short day", checkIn.Add(25 * time.Minute), 0.42},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := WorkHours(checkIn, tc.checkOut); got != tc.want {
				t.Fatalf("WorkHours = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDayOf(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 45, 12, 999, time.UTC)
	day := DayOf(now)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Fatalf("DayOf must truncate to midnight, got %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.March || day.Day() != 10 {
		t.Fatalf("DayOf changed the calendar day: %v", day)
	}
}
