package team

import (
	"testing"

	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/staff"
)

func TestUserPatchEmpty(t *testing.T) {
	if !(UserPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	role := auth.RoleManager
	if (UserPatch{Role: &role}).Empty() {
		t.Error("patch with a role should not be empty")
	}

	active := false
	if (UserPatch{IsActive: &active}).Empty() {
		t.Error("patch with isActive=false should not be empty")
	}
}

func TestProfileFromPatch(t *testing.T) {
	dept := "Engineering"
	position := "Backend Developer"
	contact := &staff.EmergencyContact{Name: "Sam Doe", PhoneNumber: "555-0100"}

	p := profileFromPatch("user-1", staff.Patch{
		Department:       &dept,
		Position:         &position,
		EmergencyContact: contact,
	})

	if p.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", p.UserID)
	}
	if p.Department != dept || p.Position != position {
		t.Errorf("got %q/%q, want %q/%q", p.Department, p.Position, dept, position)
	}
	if p.EmergencyContact == nil || p.EmergencyContact.Name != "Sam Doe" {
		t.Errorf("emergency contact not carried over: %+v", p.EmergencyContact)
	}
	if p.Address != "" || p.Skills != nil || p.Salary != nil {
		t.Errorf("unset fields should stay zero: %+v", p)
	}
}
