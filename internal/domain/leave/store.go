package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("leave request not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const requestColumns = `id, user_id, start_date, end_date, leave_type, reason, status,
  number_of_days, approved_by, approved_at, rejection_reason, created_at, updated_at`

func scanRequest(row pgx.Row) (Request, error) {
	var r Request
	var rejection *string
	err := row.Scan(&r.ID, &r.UserID, &r.StartDate, &r.EndDate, &r.LeaveType, &r.Reason, &r.Status,
		&r.NumberOfDays, &r.ApprovedBy, &r.ApprovedAt, &rejection, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if rejection != nil {
		r.RejectionReason = *rejection
	}
	return r, err
}

func (s *Store) Create(ctx context.Context, r Request) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (user_id, start_date, end_date, leave_type, reason, status, number_of_days)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+requestColumns,
		r.UserID, r.StartDate, r.EndDate, r.LeaveType, r.Reason, r.Status, r.NumberOfDays))
}

func (s *Store) ByID(ctx context.Context, id string) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, "SELECT "+requestColumns+" FROM leave_requests WHERE id = $1", id))
}

// HasOverlap reports whether any non-rejected request for the user
// intersects [start, end]. Cancelled requests still block, matching the
// status filter the system has always used.
func (s *Store) HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM leave_requests
    WHERE user_id = $1 AND status <> $2 AND start_date <= $4 AND end_date >= $3
  `, userID, StatusRejected, start, end).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ForUser(ctx context.Context, userID string, status *Status) ([]Request, error) {
	query := "SELECT " + requestColumns + " FROM leave_requests WHERE user_id = $1"
	args := []any{userID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *Store) ListAll(ctx context.Context, status *Status) ([]RequestWithUser, error) {
	query := `
    SELECT l.id, l.user_id, l.start_date, l.end_date, l.leave_type, l.reason, l.status,
           l.number_of_days, l.approved_by, l.approved_at, l.rejection_reason, l.created_at, l.updated_at,
           u.first_name, u.last_name, u.email
    FROM leave_requests l
    JOIN users u ON u.id = l.user_id`
	args := []any{}
	if status != nil {
		query += " WHERE l.status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []RequestWithUser
	for rows.Next() {
		var r RequestWithUser
		var rejection *string
		if err := rows.Scan(&r.ID, &r.UserID, &r.StartDate, &r.EndDate, &r.LeaveType, &r.Reason, &r.Status,
			&r.NumberOfDays, &r.ApprovedBy, &r.ApprovedAt, &rejection, &r.CreatedAt, &r.UpdatedAt,
			&r.FirstName, &r.LastName, &r.Email); err != nil {
			return nil, err
		}
		if rejection != nil {
			r.RejectionReason = *rejection
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *Store) Approve(ctx context.Context, id, approverID string, at time.Time) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $2, approved_by = $3, approved_at = $4, updated_at = now()
    WHERE id = $1
    RETURNING `+requestColumns, id, StatusApproved, approverID, at))
}

func (s *Store) Reject(ctx context.Context, id, approverID string, at time.Time, reason string) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = now()
    WHERE id = $1
    RETURNING `+requestColumns, id, StatusRejected, approverID, at, reason))
}

func (s *Store) Cancel(ctx context.Context, id string) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $2, updated_at = now()
    WHERE id = $1
    RETURNING `+requestColumns, id, StatusCancelled))
}
