package team

import (
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/staff"
	"staffhub/internal/domain/user"
)

// Member is the team view of an account: the user record plus its
// optional staff profile.
type Member struct {
	user.User
	StaffProfile *staff.Profile `json:"staffProfile,omitempty"`
}

type Filters struct {
	Role       *auth.Role
	Department string
	Search     string
}

// UserPatch carries only the account fields present in an update request;
// profile changes ride alongside in the handler payload.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Role      *auth.Role
	IsActive  *bool
}

func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Role == nil && p.IsActive == nil
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type RoleCount struct {
	Role  auth.Role `json:"role"`
	Count int       `json:"count"`
}

type Stats struct {
	TotalMembers        int               `json:"totalMembers"`
	ActiveMembers       int               `json:"activeMembers"`
	InactiveMembers     int               `json:"inactiveMembers"`
	DepartmentBreakdown []DepartmentCount `json:"departmentBreakdown"`
	RoleBreakdown       []RoleCount       `json:"roleBreakdown"`
}
