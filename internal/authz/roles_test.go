package authz

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"vendor", RoleVendor, false},
		{"team_leader", RoleTeamLeader, false},
		{"worker", RoleWorker, false},
		{"", "", true},
		{"Admin", "", true},
		{"superuser", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRequiresApproval(t *testing.T) {
	if RoleAdmin.RequiresApproval() || RoleVendor.RequiresApproval() {
		t.Error("admin and vendor must be implicitly active")
	}
	if !RoleTeamLeader.RequiresApproval() || !RoleWorker.RequiresApproval() {
		t.Error("team leader and worker must be gated on approval")
	}
}
