package task

import (
	"context"
	"math"
	"time"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type ListResult struct {
	Tasks []Task
	Total int
	Pages int
}

func (s *Service) Create(ctx context.Context, t Task) (Task, error) {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return s.Store.Create(ctx, t)
}

func (s *Service) ByID(ctx context.Context, id string) (Task, error) {
	return s.Store.ByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filters Filters, page, limit int, sortBy, sortOrder string) (ListResult, error) {
	offset := (page - 1) * limit
	tasks, total, err := s.Store.List(ctx, filters, limit, offset, SortColumn(sortBy), SortDirection(sortOrder))
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Tasks: tasks,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Update persists a patch. The first transition to DONE stamps
// completedAt; later DONE submissions leave the original stamp alone.
func (s *Service) Update(ctx context.Context, id string, patch Patch, now time.Time) (Task, error) {
	existing, err := s.Store.ByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	var completedAt *time.Time
	if patch.Status != nil && *patch.Status == StatusDone && existing.CompletedAt == nil {
		completedAt = &now
	}

	return s.Store.Update(ctx, id, patch, completedAt)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]Task, error) {
	return s.Store.ByUser(ctx, userID)
}

func (s *Service) ByProject(ctx context.Context, projectID string) ([]Task, error) {
	return s.Store.ByProject(ctx, projectID)
}

func (s *Service) Overdue(ctx context.Context, now time.Time) ([]Task, error) {
	return s.Store.Overdue(ctx, now)
}

func (s *Service) Stats(ctx context.Context, userID *string, now time.Time) (Stats, error) {
	return s.Store.Stats(ctx, userID, now)
}
