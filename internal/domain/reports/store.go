package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// AttendanceSummary aggregates per user over [start, end]. The left join
// keeps active users with no records in the range; their counters are zero.
func (s *Store) AttendanceSummary(ctx context.Context, start, end time.Time) ([]SummaryRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id, u.first_name, u.last_name, u.email,
           COUNT(a.id) FILTER (WHERE a.status = 'present'),
           COUNT(a.id) FILTER (WHERE a.status = 'late'),
           COUNT(a.id) FILTER (WHERE a.status = 'absent'),
           COUNT(a.id) FILTER (WHERE a.status = 'halfDay'),
           COALESCE(SUM(a.work_hours), 0)
    FROM users u
    LEFT JOIN attendance_records a
      ON a.user_id = u.id AND a.date >= $1 AND a.date <= $2
    WHERE u.is_active = true
    GROUP BY u.id, u.first_name, u.last_name, u.email
    ORDER BY u.first_name, u.last_name
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []SummaryRow
	for rows.Next() {
		var row SummaryRow
		if err := rows.Scan(&row.UserID, &row.FirstName, &row.LastName, &row.Email,
			&row.Present, &row.Late, &row.Absent, &row.HalfDays, &row.TotalHours); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}
	return summary, rows.Err()
}
