package attendance

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNoCheckInFound    = errors.New("no check-in record found for today")
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// CheckIn records the user's arrival for today. The pre-check keeps the
// common double submission friendly; the (user_id, date) unique index
// closes the race.
func (s *Service) CheckIn(ctx context.Context, userID string, now time.Time) (Record, error) {
	today := DayOf(now)

	if _, err := s.Store.ForUserOnDate(ctx, userID, today); err == nil {
		return Record{}, ErrAlreadyCheckedIn
	} else if !errors.Is(err, ErrNotFound) {
		return Record{}, err
	}

	record, err := s.Store.Create(ctx, Record{
		UserID:  userID,
		Date:    today,
		CheckIn: now,
		Status:  StatusForCheckIn(now),
	})
	if errors.Is(err, ErrDuplicate) {
		return Record{}, ErrAlreadyCheckedIn
	}
	return record, err
}

func (s *Service) CheckOut(ctx context.Context, userID string, now time.Time) (Record, error) {
	record, err := s.Store.ForUserOnDate(ctx, userID, DayOf(now))
	if errors.Is(err, ErrNotFound) {
		return Record{}, ErrNoCheckInFound
	}
	if err != nil {
		return Record{}, err
	}
	if record.CheckOut != nil {
		return Record{}, ErrAlreadyCheckedOut
	}
	return s.Store.SetCheckOut(ctx, record.ID, now, WorkHours(record.CheckIn, now))
}

// Today returns today's record, or ok=false when the user has not
// checked in yet.
func (s *Service) Today(ctx context.Context, userID string, now time.Time) (Record, bool, error) {
	record, err := s.Store.ForUserOnDate(ctx, userID, DayOf(now))
	if errors.Is(err, ErrNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return record, true, nil
}

func (s *Service) HistoryForUser(ctx context.Context, userID string, start, end *time.Time) ([]Record, error) {
	return s.Store.HistoryForUser(ctx, userID, start, end)
}

func (s *Service) ListAll(ctx context.Context, date *time.Time) ([]RecordWithUser, error) {
	return s.Store.ListAll(ctx, date)
}

// MarkAbsent records an admin-entered absence for the given day. CheckIn
// is set to the start of the day, matching the record shape of a normal
// check-in.
func (s *Service) MarkAbsent(ctx context.Context, userID string, date time.Time, notes string) (Record, error) {
	day := DayOf(date)
	return s.Store.Create(ctx, Record{
		UserID:  userID,
		Date:    day,
		CheckIn: day,
		Status:  StatusAbsent,
		Notes:   notes,
	})
}
