package authz

import "fmt"

// Role — closed set of identity tiers in the approval hierarchy.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleVendor     Role = "vendor"
	RoleTeamLeader Role = "team_leader"
	RoleWorker     Role = "worker"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleVendor, RoleTeamLeader, RoleWorker:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// RequiresApproval — team leaders and workers must be activated by their
// parent tier before they may log in. Admins and vendors are implicitly active.
func (r Role) RequiresApproval() bool {
	return r == RoleTeamLeader || r == RoleWorker
}

func (r Role) String() string { return string(r) }
