package leave

import (
	"context"
	"errors"
	"time"

	"staffhub/internal/domain/auth"
)

var (
	ErrOverlappingLeave = errors.New("an existing leave request overlaps this period")
	ErrAlreadyProcessed = errors.New("leave request has already been processed")
	ErrForbidden        = errors.New("not allowed to act on this leave request")
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Request submits a new leave request. The overlap check is a read before
// the insert; two concurrent submissions can both pass it. That window is
// a known property of this workflow, kept as-is.
func (s *Service) Request(ctx context.Context, userID string, start, end time.Time, leaveType, reason string, now time.Time) (Request, error) {
	if err := ValidateRequest(start, end, now); err != nil {
		return Request{}, err
	}

	overlap, err := s.Store.HasOverlap(ctx, userID, start, end)
	if err != nil {
		return Request{}, err
	}
	if overlap {
		return Request{}, ErrOverlappingLeave
	}

	days, err := NumberOfDays(start, end)
	if err != nil {
		return Request{}, err
	}

	return s.Store.Create(ctx, Request{
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		LeaveType:    leaveType,
		Reason:       reason,
		Status:       StatusPending,
		NumberOfDays: days,
	})
}

func (s *Service) ForUser(ctx context.Context, userID string, status *Status) ([]Request, error) {
	return s.Store.ForUser(ctx, userID, status)
}

func (s *Service) ListAll(ctx context.Context, status *Status) ([]RequestWithUser, error) {
	return s.Store.ListAll(ctx, status)
}

func (s *Service) Approve(ctx context.Context, id, actingUserID string, now time.Time) (Request, error) {
	request, err := s.Store.ByID(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if request.Status != StatusPending {
		return Request{}, ErrAlreadyProcessed
	}
	return s.Store.Approve(ctx, id, actingUserID, now)
}

func (s *Service) Reject(ctx context.Context, id, actingUserID, reason string, now time.Time) (Request, error) {
	request, err := s.Store.ByID(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if request.Status != StatusPending {
		return Request{}, ErrAlreadyProcessed
	}
	return s.Store.Reject(ctx, id, actingUserID, now, reason)
}

// Cancel applies the ownership rules: an owner may cancel only while the
// request is pending; admins and managers may cancel at any status except
// a request that is already cancelled.
func (s *Service) Cancel(ctx context.Context, id string, principal auth.Principal) (Request, error) {
	request, err := s.Store.ByID(ctx, id)
	if err != nil {
		return Request{}, err
	}

	if !principal.CanAccessRecord(request.UserID) {
		return Request{}, ErrForbidden
	}
	if request.Status == StatusCancelled {
		return Request{}, ErrAlreadyProcessed
	}
	if !principal.Role.Elevated() && request.Status != StatusPending {
		return Request{}, ErrAlreadyProcessed
	}

	return s.Store.Cancel(ctx, id)
}
