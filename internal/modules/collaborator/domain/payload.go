package domain

import "time"

// RequestInvite invite payload
type RequestInvite struct {
	Email string `json:"email" validate:"required,email,max=254"`
	Name  string `json:"name" validate:"max=200"`
	Role  string `json:"role" validate:"required"`
}

// RequestChangeRole change role payload
type RequestChangeRole struct {
	Role string `json:"role" validate:"required"`
}

// RequestJoin join by code payload, empty role means other
type RequestJoin struct {
	Role string `json:"role,omitempty"`
}

// ResponseCollaborator collaborator response
type ResponseCollaborator struct {
	ID          string      `json:"id"`
	WeddingID   string      `json:"weddingId"`
	UserID      string      `json:"userId,omitempty"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Role        Role        `json:"role"`
	Status      Status      `json:"status"`
	Permissions Permissions `json:"permissions"`
	InvitedBy   string      `json:"invitedBy"`
	InvitedAt   string      `json:"invitedAt"`
	AcceptedAt  string      `json:"acceptedAt,omitempty"`
}

// Serialize from collaborator model
func (r *ResponseCollaborator) Serialize(source *Collaborator) {
	r.ID = source.ID
	r.WeddingID = source.WeddingID
	if source.UserID != nil {
		r.UserID = *source.UserID
	}
	r.Email = source.Email
	r.Name = source.Name
	r.Role = source.Role
	r.Status = source.Status
	r.Permissions = source.Permissions
	r.InvitedBy = source.InvitedBy
	r.InvitedAt = source.InvitedAt.Format(time.RFC3339)
	if source.AcceptedAt != nil {
		r.AcceptedAt = source.AcceptedAt.Format(time.RFC3339)
	}
}
