package leave

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("start date must be on or before end date")
	ErrPastDate         = errors.New("cannot request leave for past dates")
)

// NumberOfDays returns the day count of [start, end] inclusive of both
// endpoints: a single-day request counts as 1.
func NumberOfDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1, nil
}

// ValidateRequest checks the date range of a new request against now.
func ValidateRequest(start, end, now time.Time) error {
	if start.After(end) {
		return ErrInvalidDateRange
	}
	if start.Before(now) {
		return ErrPastDate
	}
	return nil
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect.
// Ranges are inclusive, so touching endpoints overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
