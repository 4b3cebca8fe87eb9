package auth

import "strings"

// Role is the single source of truth for role checks. Handlers never
// compare raw strings.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

var allRoles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// ParseRole normalizes a client-supplied role string. Unknown values
// fall back to EMPLOYEE so registration can never mint an unexpected role.
func ParseRole(raw string) Role {
	normalized := Role(strings.ToUpper(strings.TrimSpace(raw)))
	for _, role := range allRoles {
		if normalized == role {
			return role
		}
	}
	return RoleEmployee
}

func (r Role) Valid() bool {
	for _, role := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Elevated reports whether the role may act on records it does not own.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleManager
}

// Principal is the authenticated identity for one request. It is derived
// from a verified token and never persisted.
type Principal struct {
	UserID string
	Role   Role
}

// CanAccessRecord implements the row-level policy: elevated roles act on
// any record, employees only on their own.
func (p Principal) CanAccessRecord(ownerID string) bool {
	if p.Role.Elevated() {
		return true
	}
	return p.UserID == ownerID
}
