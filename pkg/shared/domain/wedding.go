package domain

import (
	"errors"
	"time"
)

// ErrWeddingNotFound returned by wedding registry when wedding id is unknown
var ErrWeddingNotFound = errors.New("wedding not found")

// Wedding model, owner is implicitly a collaborator with full permissions
type Wedding struct {
	ID          string    `json:"id" bson:"_id"`
	OwnerID     string    `json:"ownerId" bson:"ownerId"`
	Name        string    `json:"name" bson:"name"`
	WeddingDate time.Time `json:"weddingDate" bson:"weddingDate"`
	Venue       string    `json:"venue,omitempty" bson:"venue,omitempty"`
	Theme       string    `json:"theme,omitempty" bson:"theme,omitempty"`
}

// IsOwner check user is owner of the wedding
func (w *Wedding) IsOwner(userID string) bool {
	return w != nil && userID != "" && w.OwnerID == userID
}
