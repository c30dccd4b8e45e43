package domain

import (
	"time"
)

// Status invitation status
type Status string

// Status list, pending is the only non-terminal status
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Collaborator model, UserID is nil while invitation is addressed to an email without account
type Collaborator struct {
	ID          string      `json:"id" bson:"_id"`
	WeddingID   string      `json:"weddingId" bson:"weddingId"`
	UserID      *string     `json:"userId,omitempty" bson:"userId,omitempty"`
	Email       string      `json:"email" bson:"email"`
	Name        string      `json:"name" bson:"name"`
	Role        Role        `json:"role" bson:"role"`
	Status      Status      `json:"status" bson:"status"`
	Permissions Permissions `json:"permissions" bson:"permissions"`
	InvitedBy   string      `json:"invitedBy" bson:"invitedBy"`
	InvitedAt   time.Time   `json:"invitedAt" bson:"invitedAt"`
	AcceptedAt  *time.Time  `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// SetRole set role together with the derived permissions
func (c *Collaborator) SetRole(role Role) {
	c.Role = role
	c.Permissions = PermissionsFor(role)
}

// IsBound collaborator already linked to user account
func (c *Collaborator) IsBound() bool {
	return c.UserID != nil && *c.UserID != ""
}

// Access effective access of a user on a wedding
func (c *Collaborator) Access() Access {
	return Access{Role: c.Role, Permissions: c.Permissions, Status: c.Status}
}

// CollaboratorPatch partial update, nil field is untouched.
// ExpectStatus and ExpectUnbound guard the update so it only applies when the stored record still matches
type CollaboratorPatch struct {
	UserID     *string
	Status     *Status
	Role       *Role
	AcceptedAt *time.Time

	ExpectStatus  *Status
	ExpectUnbound bool
}

// Permissions derived permissions for patched role, nil when role is not patched
func (p *CollaboratorPatch) Permissions() *Permissions {
	if p.Role == nil {
		return nil
	}
	perm := PermissionsFor(*p.Role)
	return &perm
}

// Apply patch to collaborator, return false when guard does not match
func (p *CollaboratorPatch) Apply(c *Collaborator, now time.Time) bool {
	if p.ExpectStatus != nil && c.Status != *p.ExpectStatus {
		return false
	}
	if p.ExpectUnbound && c.IsBound() {
		return false
	}

	if p.UserID != nil {
		userID := *p.UserID
		c.UserID = &userID
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Role != nil {
		c.SetRole(*p.Role)
	}
	if p.AcceptedAt != nil {
		acceptedAt := *p.AcceptedAt
		c.AcceptedAt = &acceptedAt
	}
	c.UpdatedAt = now
	return true
}

// Access effective role, permissions and status of a user for a wedding
type Access struct {
	Role        Role        `json:"role"`
	Permissions Permissions `json:"permissions"`
	Status      Status      `json:"status"`
	IsOwner     bool        `json:"isOwner"`
}

// OwnerAccess synthesized access for wedding owner, not persisted
func OwnerAccess() Access {
	return Access{Role: RoleOwner, Permissions: FullPermissions(), Status: StatusAccepted, IsOwner: true}
}

// Allows check capability, non owner must have accepted the invitation
func (a Access) Allows(c Capability) bool {
	if !a.IsOwner && a.Status != StatusAccepted {
		return false
	}
	return a.Permissions.Allows(c)
}
