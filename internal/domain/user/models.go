package user

import (
	"time"

	"staffhub/internal/domain/auth"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      auth.Role `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PasswordHash never leaves the domain layer.
	PasswordHash string `json:"-"`
}

type CreateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      auth.Role
}
