package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("task not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const taskColumns = `id, title, description, status, priority, due_date, completed_at,
  project_id, assigned_to_id, created_by_id, created_at, updated_at`

func scanTask(row pgx.Row) (Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CompletedAt,
		&t.ProjectID, &t.AssignedToID, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return t, err
}

func (s *Store) Create(ctx context.Context, t Task) (Task, error) {
	return scanTask(s.DB.QueryRow(ctx, `
    INSERT INTO tasks (title, description, status, priority, due_date, project_id, assigned_to_id, created_by_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+taskColumns,
		t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.ProjectID, t.AssignedToID, t.CreatedByID))
}

func (s *Store) ByID(ctx context.Context, id string) (Task, error) {
	return scanTask(s.DB.QueryRow(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id))
}

// List runs the filtered, paginated, sorted query plus a matching count.
// sortColumn and sortDir must come from the whitelists in policy.go.
func (s *Store) List(ctx context.Context, filters Filters, limit, offset int, sortColumn, sortDir string) ([]Task, int, error) {
	where, args := buildWhere(filters)

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM tasks"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM tasks%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		taskColumns, where, sortColumn, sortDir, len(args)+1, len(args)+2)
	rows, err := s.DB.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}
	return tasks, total, rows.Err()
}

func buildWhere(filters Filters) (string, []any) {
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filters.Status != nil {
		add("status = $%d", *filters.Status)
	}
	if filters.Priority != nil {
		add("priority = $%d", *filters.Priority)
	}
	if filters.AssignedToID != nil {
		add("assigned_to_id = $%d", *filters.AssignedToID)
	}
	if filters.CreatedByID != nil {
		add("created_by_id = $%d", *filters.CreatedByID)
	}
	if filters.ProjectID != nil {
		add("project_id = $%d", *filters.ProjectID)
	}
	if filters.DueDateBefore != nil {
		add("due_date < $%d", *filters.DueDateBefore)
	}
	if filters.DueDateAfter != nil {
		add("due_date > $%d", *filters.DueDateAfter)
	}
	if filters.OwnedBy != nil {
		args = append(args, *filters.OwnedBy)
		conditions = append(conditions, fmt.Sprintf("(assigned_to_id = $%d OR created_by_id = $%d)", len(args), len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Update applies only the fields present in the patch. completedAt is
// passed separately because the service derives it, never the client.
func (s *Store) Update(ctx context.Context, id string, patch Patch, completedAt *time.Time) (Task, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.ProjectID != nil {
		add("project_id", *patch.ProjectID)
	}
	if patch.AssignedToID != nil {
		add("assigned_to_id", *patch.AssignedToID)
	}
	if completedAt != nil {
		add("completed_at", *completedAt)
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = $1 RETURNING " + taskColumns
	return scanTask(s.DB.QueryRow(ctx, query, args...))
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ByUser lists tasks the user is assignee or creator of.
func (s *Store) ByUser(ctx context.Context, userID string) ([]Task, error) {
	return s.queryTasks(ctx, `
    SELECT `+taskColumns+`
    FROM tasks
    WHERE assigned_to_id = $1 OR created_by_id = $1
    ORDER BY created_at DESC
  `, userID)
}

func (s *Store) ByProject(ctx context.Context, projectID string) ([]Task, error) {
	return s.queryTasks(ctx, `
    SELECT `+taskColumns+`
    FROM tasks
    WHERE project_id = $1
    ORDER BY created_at DESC
  `, projectID)
}

func (s *Store) Overdue(ctx context.Context, now time.Time) ([]Task, error) {
	return s.queryTasks(ctx, `
    SELECT `+taskColumns+`
    FROM tasks
    WHERE due_date < $1 AND status <> $2
    ORDER BY due_date ASC
  `, now, StatusDone)
}

func (s *Store) queryTasks(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Stats aggregates task counts, optionally scoped to one assignee.
func (s *Store) Stats(ctx context.Context, userID *string, now time.Time) (Stats, error) {
	query := `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE status = 'TODO'),
           COUNT(1) FILTER (WHERE status = 'IN_PROGRESS'),
           COUNT(1) FILTER (WHERE status = 'REVIEW'),
           COUNT(1) FILTER (WHERE status = 'DONE'),
           COUNT(1) FILTER (WHERE due_date < $1 AND status <> 'DONE')
    FROM tasks`
	args := []any{now}
	if userID != nil {
		query += " WHERE assigned_to_id = $2"
		args = append(args, *userID)
	}

	var stats Stats
	err := s.DB.QueryRow(ctx, query, args...).Scan(&stats.Total, &stats.Todo, &stats.InProgress, &stats.Review, &stats.Done, &stats.Overdue)
	return stats, err
}
