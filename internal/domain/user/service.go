package user

import (
	"context"
	"errors"

	"staffhub/internal/domain/auth"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Register creates an account. A duplicate email fails before the insert;
// the unique index on users.email backs the check under concurrency.
func (s *Service) Register(ctx context.Context, input CreateInput) (User, error) {
	taken, err := s.Store.EmailExists(ctx, input.Email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return User{}, err
	}
	return s.Store.Create(ctx, input, hash)
}

// Authenticate verifies email+password for an active account. Every failure
// path returns ErrInvalidCredentials so responses cannot reveal whether the
// email exists.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.Store.ByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if !u.IsActive {
		return User{}, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) ByID(ctx context.Context, id string) (User, error) {
	return s.Store.ByID(ctx, id)
}
