package attendance

import (
	"math"
	"time"
)

// Workday start; check-ins strictly after this instant count as late.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 30
)

// DayOf truncates a timestamp to day granularity in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StatusForCheckIn classifies a check-in instant against the 09:30 cutoff.
func StatusForCheckIn(now time.Time) Status {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), lateCutoffHour, lateCutoffMinute, 0, 0, now.Location())
	if now.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// WorkHours returns the decimal hours between check-in and check-out,
// rounded to two places (8h30m -> 8.5).
func WorkHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}
