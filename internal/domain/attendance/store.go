package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("attendance record not found")
	ErrDuplicate = errors.New("attendance record already exists for this date")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = "id, user_id, date, check_in, check_out, status, work_hours, notes, created_at, updated_at"

func scanRecord(row pgx.Row) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.CheckIn, &r.CheckOut, &r.Status, &r.WorkHours, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return r, err
}

// Create inserts a record for (user, day). The unique index on
// (user_id, date) turns a double submission into ErrDuplicate.
func (s *Store) Create(ctx context.Context, r Record) (Record, error) {
	created, err := scanRecord(s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (user_id, date, check_in, status, notes)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+recordColumns, r.UserID, r.Date, r.CheckIn, r.Status, r.Notes))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Record{}, ErrDuplicate
		}
		return Record{}, err
	}
	return created, nil
}

func (s *Store) ForUserOnDate(ctx context.Context, userID string, date time.Time) (Record, error) {
	return scanRecord(s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM attendance_records
    WHERE user_id = $1 AND date = $2
  `, userID, date))
}

func (s *Store) SetCheckOut(ctx context.Context, id string, checkOut time.Time, workHours float64) (Record, error) {
	return scanRecord(s.DB.QueryRow(ctx, `
    UPDATE attendance_records
    SET check_out = $2, work_hours = $3, updated_at = now()
    WHERE id = $1
    RETURNING `+recordColumns, id, checkOut, workHours))
}

// HistoryForUser lists a user's records newest first. Each bound applies
// on its own, so ?startDate without ?endDate is an open-ended window.
func (s *Store) HistoryForUser(ctx context.Context, userID string, start, end *time.Time) ([]Record, error) {
	clause, bounds := historyWindow(start, end)
	query := "SELECT " + recordColumns + " FROM attendance_records WHERE user_id = $1" + clause
	args := append([]any{userID}, bounds...)
	query += " ORDER BY date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// historyWindow renders the optional date bounds; placeholders start at $2
// because $1 is always the user id.
func historyWindow(start, end *time.Time) (string, []any) {
	clause := ""
	var args []any
	if start != nil {
		args = append(args, *start)
		clause += fmt.Sprintf(" AND date >= $%d", len(args)+1)
	}
	if end != nil {
		args = append(args, *end)
		clause += fmt.Sprintf(" AND date <= $%d", len(args)+1)
	}
	return clause, args
}

// ListAll returns every record joined with the owner's identity, newest
// first, optionally restricted to a single day.
func (s *Store) ListAll(ctx context.Context, date *time.Time) ([]RecordWithUser, error) {
	query := `
    SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.status, a.work_hours, a.notes,
           a.created_at, a.updated_at, u.first_name, u.last_name, u.email
    FROM attendance_records a
    JOIN users u ON u.id = a.user_id`
	args := []any{}
	if date != nil {
		query += " WHERE a.date = $1"
		args = append(args, *date)
	}
	query += " ORDER BY a.date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RecordWithUser
	for rows.Next() {
		var r RecordWithUser
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.CheckIn, &r.CheckOut, &r.Status, &r.WorkHours, &r.Notes,
			&r.CreatedAt, &r.UpdatedAt, &r.FirstName, &r.LastName, &r.Email); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
