package domain

import (
	"errors"
	"strings"
)

// Role collaborator role in a wedding
type Role string

// Role wire names
const (
	RoleOwner       Role = "owner"
	RoleBride       Role = "bride"
	RoleGroom       Role = "groom"
	RolePlanner     Role = "planner"
	RoleMaidOfHonor Role = "maid_of_honor"
	RoleBestMan     Role = "best_man"
	RoleParent      Role = "parent"
	RoleSibling     Role = "sibling"
	RoleFriend      Role = "friend"
	RoleOther       Role = "other"
)

var roles = []Role{
	RoleOwner, RoleBride, RoleGroom, RolePlanner, RoleMaidOfHonor,
	RoleBestMan, RoleParent, RoleSibling, RoleFriend, RoleOther,
}

// Roles return all known roles
func Roles() []Role {
	return append([]Role(nil), roles...)
}

// ParseRole parse role from wire name, case-insensitive
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range roles {
		if r == known {
			return r, nil
		}
	}
	return "", NewValidationError("role", errors.New("unknown role '"+s+"'"))
}

// Assignable role can be given through invite, join or role change; ownership comes from the wedding record only
func (r Role) Assignable() bool {
	return r != RoleOwner
}

func (r Role) String() string {
	return string(r)
}
