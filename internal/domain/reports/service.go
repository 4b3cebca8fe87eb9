package reports

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("start date must not be after end date")

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// AttendanceSummary defaults to the last 30 days when the range is open.
func (s *Service) AttendanceSummary(ctx context.Context, start, end *time.Time, now time.Time) (Summary, error) {
	to := now
	if end != nil {
		to = *end
	}
	from := to.AddDate(0, 0, -30)
	if start != nil {
		from = *start
	}
	if from.After(to) {
		return Summary{}, ErrInvalidRange
	}

	rows, err := s.Store.AttendanceSummary(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	return Summary{StartDate: from, EndDate: to, Rows: rows}, nil
}
