package staff

import "time"

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
}

type Profile struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Department       string            `json:"department,omitempty"`
	Position         string            `json:"position,omitempty"`
	HireDate         *time.Time        `json:"hireDate,omitempty"`
	Address          string            `json:"address,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	DateOfBirth      *time.Time        `json:"dateOfBirth,omitempty"`
	Skills           []string          `json:"skills,omitempty"`
	Salary           *float64          `json:"salary,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Patch carries only the fields present in an update request.
type Patch struct {
	Department       *string
	Position         *string
	HireDate         *time.Time
	Address          *string
	PhoneNumber      *string
	EmergencyContact *EmergencyContact
	DateOfBirth      *time.Time
	Skills           *[]string
	Salary           *float64
}

// SelfOnly strips the patch down to the fields an employee may change on
// their own profile. Disallowed fields are dropped silently, not rejected;
// the task module takes the opposite approach and both are deliberate.
func (p Patch) SelfOnly() Patch {
	return Patch{
		PhoneNumber:      p.PhoneNumber,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
	}
}

func (p Patch) Empty() bool {
	return p.Department == nil && p.Position == nil && p.HireDate == nil &&
		p.Address == nil && p.PhoneNumber == nil && p.EmergencyContact == nil &&
		p.DateOfBirth == nil && p.Skills == nil && p.Salary == nil
}
