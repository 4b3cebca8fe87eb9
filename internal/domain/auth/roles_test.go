package auth

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{" Manager ", RoleManager},
		{"employee", RoleEmployee},
		{"", RoleEmployee},
		{"superuser", RoleEmployee},
	}

	for _, tc := range tests {
		if got := ParseRole(tc.raw); got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanAccessRecord(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		ownerID   string
		want      bool
	}{
		{"admin any record", Principal{UserID: "a", Role: RoleAdmin}, "b", true},
		{"manager any record", Principal{UserID: "a", Role: RoleManager}, "b", true},
		{"employee own record", Principal{UserID: "a", Role: RoleEmployee}, "a", true},
		{"employee other record", Principal{UserID: "a", Role: RoleEmployee}, "b", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.principal.CanAccessRecord(tc.ownerID); got != tc.want {
				t.Fatalf("CanAccessRecord(%q) = %v, want %v", tc.ownerID, got, tc.want)
			}
		})
	}
}
