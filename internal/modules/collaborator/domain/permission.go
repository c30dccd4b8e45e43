package domain

// Permissions derived from role, never set directly
type Permissions struct {
	CanView         bool `json:"canView" bson:"canView"`
	CanEditTimeline bool `json:"canEditTimeline" bson:"canEditTimeline"`
	CanEditGuests   bool `json:"canEditGuests" bson:"canEditGuests"`
	CanEditShop     bool `json:"canEditShop" bson:"canEditShop"`
	CanInviteOthers bool `json:"canInviteOthers" bson:"canInviteOthers"`
	CanManageRoles  bool `json:"canManageRoles" bson:"canManageRoles"`
}

// FullPermissions all capability granted, used for wedding owner
func FullPermissions() Permissions {
	return Permissions{
		CanView: true, CanEditTimeline: true, CanEditGuests: true,
		CanEditShop: true, CanInviteOthers: true, CanManageRoles: true,
	}
}

// PermissionsFor role permission table, unknown role is view only
func PermissionsFor(role Role) Permissions {
	switch role {
	case RoleOwner:
		return FullPermissions()
	case RoleBride, RoleGroom, RolePlanner:
		return Permissions{CanView: true, CanEditTimeline: true, CanEditGuests: true, CanEditShop: true, CanInviteOthers: true}
	case RoleMaidOfHonor, RoleBestMan:
		return Permissions{CanView: true, CanEditTimeline: true}
	case RoleParent:
		return Permissions{CanView: true, CanEditGuests: true}
	default:
		return Permissions{CanView: true}
	}
}

// Capability single permission flag checked by authorization gate
type Capability string

// Capability list
const (
	CapabilityView         Capability = "view"
	CapabilityEditTimeline Capability = "edit_timeline"
	CapabilityEditGuests   Capability = "edit_guests"
	CapabilityEditShop     Capability = "edit_shop"
	CapabilityInviteOthers Capability = "invite_others"
	CapabilityManageRoles  Capability = "manage_roles"
)

// Capabilities return all capability
func Capabilities() []Capability {
	return []Capability{
		CapabilityView, CapabilityEditTimeline, CapabilityEditGuests,
		CapabilityEditShop, CapabilityInviteOthers, CapabilityManageRoles,
	}
}

// Allows check capability is granted
func (p Permissions) Allows(c Capability) bool {
	switch c {
	case CapabilityView:
		return p.CanView
	case CapabilityEditTimeline:
		return p.CanEditTimeline
	case CapabilityEditGuests:
		return p.CanEditGuests
	case CapabilityEditShop:
		return p.CanEditShop
	case CapabilityInviteOthers:
		return p.CanInviteOthers
	case CapabilityManageRoles:
		return p.CanManageRoles
	}
	return false
}
