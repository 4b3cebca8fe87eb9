package team

import (
	"context"
	"errors"

	"staffhub/internal/domain/staff"
	"staffhub/internal/domain/user"
)

// CreateInput bundles the account with an optional profile so a member can
// be onboarded in one call.
type CreateInput struct {
	User    user.CreateInput
	Profile *staff.Profile
}

type Service struct {
	Store    *Store
	Users    *user.Service
	Profiles *staff.Store
}

func NewService(store *Store, users *user.Service, profiles *staff.Store) *Service {
	return &Service{Store: store, Users: users, Profiles: profiles}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (Member, error) {
	u, err := s.Users.Register(ctx, input.User)
	if err != nil {
		return Member{}, err
	}

	member := Member{User: u}
	if input.Profile != nil {
		profile := *input.Profile
		profile.UserID = u.ID
		created, err := s.Profiles.Create(ctx, profile)
		if err != nil {
			return Member{}, err
		}
		member.StaffProfile = &created
	}
	return member, nil
}

func (s *Service) List(ctx context.Context, filters Filters, limit, offset int) ([]Member, int, error) {
	return s.Store.List(ctx, filters, limit, offset)
}

func (s *Service) ByID(ctx context.Context, id string) (Member, error) {
	return s.Store.ByID(ctx, id)
}

func (s *Service) ByDepartment(ctx context.Context, department string) ([]Member, error) {
	return s.Store.ByDepartment(ctx, department)
}

// Update patches the account and, when profile fields are present, upserts
// the profile. A member without a profile gets one created from the patch.
func (s *Service) Update(ctx context.Context, id string, userPatch UserPatch, profilePatch staff.Patch) (Member, error) {
	if !userPatch.Empty() {
		if err := s.Store.UpdateUser(ctx, id, userPatch); err != nil {
			return Member{}, err
		}
	}

	if !profilePatch.Empty() {
		_, err := s.Profiles.Update(ctx, id, profilePatch)
		if errors.Is(err, staff.ErrNotFound) {
			_, err = s.Profiles.Create(ctx, profileFromPatch(id, profilePatch))
		}
		if err != nil {
			return Member{}, err
		}
	}

	return s.Store.ByID(ctx, id)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.Store.Deactivate(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.Store.Stats(ctx)
}

func profileFromPatch(userID string, patch staff.Patch) staff.Profile {
	p := staff.Profile{UserID: userID}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.Position != nil {
		p.Position = *patch.Position
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		p.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	p.HireDate = patch.HireDate
	p.DateOfBirth = patch.DateOfBirth
	p.EmergencyContact = patch.EmergencyContact
	p.Salary = patch.Salary
	return p
}
