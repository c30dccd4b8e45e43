package repository

import (
	"context"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
)

// CollaboratorRepository abstract interface.
// Insert returns domain.ErrDuplicateCollaboration on unique (weddingId, email) or (weddingId, userId) violation,
// Update applies patch only when its guards match, otherwise domain.ErrNotFound
type CollaboratorRepository interface {
	FindByWeddingAndUser(ctx context.Context, weddingID, userID string) (*domain.Collaborator, error)
	FindByWeddingAndEmail(ctx context.Context, weddingID, email string) (*domain.Collaborator, error)
	FindByID(ctx context.Context, id string) (*domain.Collaborator, error)
	FindAcceptedByUser(ctx context.Context, userID string) (*domain.Collaborator, error)
	FetchByWedding(ctx context.Context, weddingID string) ([]domain.Collaborator, error)
	FetchPendingByEmail(ctx context.Context, email string) ([]domain.Collaborator, error)
	Insert(ctx context.Context, data *domain.Collaborator) error
	Update(ctx context.Context, id string, patch domain.CollaboratorPatch) error
	Delete(ctx context.Context, id string) error
}
