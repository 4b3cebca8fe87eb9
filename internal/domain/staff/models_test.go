package staff

import "testing"

func TestPatchSelfOnly(t *testing.T) {
	department := "Engineering"
	position := "Lead"
	phone := "555-0100"
	address := "1 Main St"
	salary := 90000.0
	contact := EmergencyContact{Name: "Sam", Relationship: "partner", PhoneNumber: "555-0101"}

	patch := Patch{
		Department:       &department,
		Position:         &position,
		PhoneNumber:      &phone,
		Address:          &address,
		EmergencyContact: &contact,
		Salary:           &salary,
	}

	filtered := patch.SelfOnly()

	if filtered.Department != nil || filtered.Position != nil || filtered.Salary != nil {
		t.Fatal("restricted fields must be dropped from a self update")
	}
	if filtered.PhoneNumber == nil || *filtered.PhoneNumber != phone {
		t.Fatal("phoneNumber must survive a self update")
	}
	if filtered.Address == nil || *filtered.Address != address {
		t.Fatal("address must survive a self update")
	}
	if filtered.EmergencyContact == nil || filtered.EmergencyContact.Name != "Sam" {
		t.Fatal("emergencyContact must survive a self update")
	}
}

func TestPatchEmpty(t *testing.T) {
	if !(Patch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}
	phone := "555-0100"
	if (Patch{PhoneNumber: &phone}).Empty() {
		t.Fatal("patch with a field should not be empty")
	}
	if !(Patch{Department: new(string)}.SelfOnly()).Empty() {
		t.Fatal("self filter of restricted-only patch should be empty")
	}
}
