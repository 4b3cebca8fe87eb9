package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("staff profile not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const profileColumns = `id, user_id, department, position, hire_date, address, phone_number,
  emergency_name, emergency_relationship, emergency_phone,
  date_of_birth, skills, salary, created_at, updated_at`

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	var emName, emRel, emPhone *string
	err := row.Scan(&p.ID, &p.UserID, &p.Department, &p.Position, &p.HireDate, &p.Address, &p.PhoneNumber,
		&emName, &emRel, &emPhone,
		&p.DateOfBirth, &p.Skills, &p.Salary, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	if emName != nil || emRel != nil || emPhone != nil {
		p.EmergencyContact = &EmergencyContact{
			Name:         deref(emName),
			Relationship: deref(emRel),
			PhoneNumber:  deref(emPhone),
		}
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Store) Create(ctx context.Context, p Profile) (Profile, error) {
	var emName, emRel, emPhone *string
	if p.EmergencyContact != nil {
		emName, emRel, emPhone = &p.EmergencyContact.Name, &p.EmergencyContact.Relationship, &p.EmergencyContact.PhoneNumber
	}
	return scanProfile(s.DB.QueryRow(ctx, `
    INSERT INTO staff_profiles
      (user_id, department, position, hire_date, address, phone_number,
       emergency_name, emergency_relationship, emergency_phone,
       date_of_birth, skills, salary)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING `+profileColumns,
		p.UserID, p.Department, p.Position, p.HireDate, p.Address, p.PhoneNumber,
		emName, emRel, emPhone, p.DateOfBirth, p.Skills, p.Salary))
}

func (s *Store) ByUserID(ctx context.Context, userID string) (Profile, error) {
	return scanProfile(s.DB.QueryRow(ctx, "SELECT "+profileColumns+" FROM staff_profiles WHERE user_id = $1", userID))
}

func (s *Store) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM staff_profiles WHERE user_id = $1", userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns every profile joined with the owner's name for sorting.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+prefixColumns("p", profileColumns)+`
    FROM staff_profiles p
    JOIN users u ON u.id = p.user_id
    ORDER BY u.first_name, u.last_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Update applies only the fields present in the patch.
func (s *Store) Update(ctx context.Context, userID string, patch Patch) (Profile, error) {
	sets := []string{"updated_at = now()"}
	args := []any{userID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Department != nil {
		add("department", *patch.Department)
	}
	if patch.Position != nil {
		add("position", *patch.Position)
	}
	if patch.HireDate != nil {
		add("hire_date", *patch.HireDate)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.PhoneNumber != nil {
		add("phone_number", *patch.PhoneNumber)
	}
	if patch.EmergencyContact != nil {
		add("emergency_name", patch.EmergencyContact.Name)
		add("emergency_relationship", patch.EmergencyContact.Relationship)
		add("emergency_phone", patch.EmergencyContact.PhoneNumber)
	}
	if patch.DateOfBirth != nil {
		add("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Skills != nil {
		add("skills", *patch.Skills)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}

	query := "UPDATE staff_profiles SET " + strings.Join(sets, ", ") + " WHERE user_id = $1 RETURNING " + profileColumns
	return scanProfile(s.DB.QueryRow(ctx, query, args...))
}

func (s *Store) DeleteByUserID(ctx context.Context, userID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM staff_profiles WHERE user_id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
