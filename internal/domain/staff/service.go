package staff

import (
	"context"
	"errors"

	"staffhub/internal/domain/user"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrProfileExists = errors.New("profile already exists for this user")
)

type Service struct {
	Store *Store
	Users *user.Store
}

func NewService(store *Store, users *user.Store) *Service {
	return &Service{Store: store, Users: users}
}

func (s *Service) Create(ctx context.Context, p Profile) (Profile, error) {
	if _, err := s.Users.ByID(ctx, p.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, err
	}

	exists, err := s.Store.ExistsForUser(ctx, p.UserID)
	if err != nil {
		return Profile{}, err
	}
	if exists {
		return Profile{}, ErrProfileExists
	}
	return s.Store.Create(ctx, p)
}

func (s *Service) ByUserID(ctx context.Context, userID string) (Profile, error) {
	return s.Store.ByUserID(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.Store.List(ctx)
}

// Update applies a patch to the profile owned by userID. selfOnly narrows
// the patch to the employee-editable fields first.
func (s *Service) Update(ctx context.Context, userID string, patch Patch, selfOnly bool) (Profile, error) {
	if selfOnly {
		patch = patch.SelfOnly()
	}
	if patch.Empty() {
		return s.Store.ByUserID(ctx, userID)
	}
	return s.Store.Update(ctx, userID, patch)
}

// Delete removes the profile row. User history (attendance, leave, tasks)
// is keyed by user id and is unaffected.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.Store.DeleteByUserID(ctx, userID)
}
