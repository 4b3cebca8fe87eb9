package team

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"staffhub/internal/domain/staff"
)

var ErrNotFound = errors.New("team member not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const memberColumns = `u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.updated_at,
  p.id, p.department, p.position, p.hire_date, p.address, p.phone_number,
  p.emergency_name, p.emergency_relationship, p.emergency_phone,
  p.date_of_birth, p.skills, p.salary, p.created_at, p.updated_at`

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	var profileID, department, position, address, phone *string
	var emName, emRel, emPhone *string
	var hireDate, dateOfBirth, profileCreated, profileUpdated *time.Time
	var skills []string
	var salary *float64

	err := row.Scan(&m.ID, &m.Email, &m.PasswordHash, &m.FirstName, &m.LastName, &m.Role, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		&profileID, &department, &position, &hireDate, &address, &phone,
		&emName, &emRel, &emPhone,
		&dateOfBirth, &skills, &salary, &profileCreated, &profileUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	if err != nil {
		return Member{}, err
	}

	if profileID != nil {
		profile := &staff.Profile{
			ID:          *profileID,
			UserID:      m.ID,
			Department:  deref(department),
			Position:    deref(position),
			HireDate:    hireDate,
			Address:     deref(address),
			PhoneNumber: deref(phone),
			DateOfBirth: dateOfBirth,
			Skills:      skills,
			Salary:      salary,
		}
		if profileCreated != nil {
			profile.CreatedAt = *profileCreated
		}
		if profileUpdated != nil {
			profile.UpdatedAt = *profileUpdated
		}
		if emName != nil || emRel != nil || emPhone != nil {
			profile.EmergencyContact = &staff.EmergencyContact{
				Name:         deref(emName),
				Relationship: deref(emRel),
				PhoneNumber:  deref(emPhone),
			}
		}
		m.StaffProfile = profile
	}
	return m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const memberFrom = " FROM users u LEFT JOIN staff_profiles p ON p.user_id = u.id"

// List filters active members: exact role, case-insensitive partial match
// on name/email, department match through the profile join.
func (s *Store) List(ctx context.Context, filters Filters, limit, offset int) ([]Member, int, error) {
	conditions := []string{"u.is_active = true"}
	var args []any

	if filters.Role != nil {
		args = append(args, *filters.Role)
		conditions = append(conditions, fmt.Sprintf("u.role = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)", n, n, n))
	}
	if filters.Department != "" {
		args = append(args, "%"+filters.Department+"%")
		conditions = append(conditions, fmt.Sprintf("p.department ILIKE $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1)"+memberFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s%s%s ORDER BY u.created_at DESC LIMIT $%d OFFSET $%d",
		memberColumns, memberFrom, where, len(args)+1, len(args)+2)
	rows, err := s.DB.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}

func (s *Store) ByID(ctx context.Context, id string) (Member, error) {
	return scanMember(s.DB.QueryRow(ctx, "SELECT "+memberColumns+memberFrom+" WHERE u.id = $1", id))
}

func (s *Store) ByDepartment(ctx context.Context, department string) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+memberColumns+memberFrom+`
    WHERE u.is_active = true AND p.department ILIKE $1
    ORDER BY u.first_name ASC
  `, "%"+department+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch UserPatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	tag, err := s.DB.Exec(ctx, "UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = $1", args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate is the only delete this aggregate supports; history rows
// keep pointing at the user.
func (s *Store) Deactivate(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE is_active)
    FROM users
  `).Scan(&stats.TotalMembers, &stats.ActiveMembers)
	if err != nil {
		return Stats{}, err
	}
	stats.InactiveMembers = stats.TotalMembers - stats.ActiveMembers

	rows, err := s.DB.Query(ctx, `
    SELECT department, COUNT(1)
    FROM staff_profiles
    WHERE department <> ''
    GROUP BY department
    ORDER BY department
  `)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return Stats{}, err
		}
		stats.DepartmentBreakdown = append(stats.DepartmentBreakdown, dc)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	roleRows, err := s.DB.Query(ctx, `
    SELECT role, COUNT(1)
    FROM users
    WHERE is_active
    GROUP BY role
    ORDER BY role
  `)
	if err != nil {
		return Stats{}, err
	}
	defer roleRows.Close()
	for roleRows.Next() {
		var rc RoleCount
		if err := roleRows.Scan(&rc.Role, &rc.Count); err != nil {
			return Stats{}, err
		}
		stats.RoleBreakdown = append(stats.RoleBreakdown, rc)
	}
	return stats, roleRows.Err()
}
