package usecase

import (
	"context"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// ListCollaborators all collaborator of wedding, owner is not included
func (uc *collaboratorUsecaseImpl) ListCollaborators(ctx context.Context, actorID, weddingID string) (results []domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:ListCollaborators")
	defer trace.Finish()

	if _, err = uc.Authorize(ctx, actorID, weddingID, domain.CapabilityView); err != nil {
		return nil, err
	}

	data, err := uc.repo.CollaboratorRepo().FetchByWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	return serializeAll(data), nil
}

// ListMyInvitations pending invitation addressed to the user email
func (uc *collaboratorUsecaseImpl) ListMyInvitations(ctx context.Context, userID string) (results []domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:ListMyInvitations")
	defer trace.Finish()

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	email, err := userEmail(user)
	if err != nil {
		return []domain.ResponseCollaborator{}, nil
	}

	data, err := uc.repo.CollaboratorRepo().FetchPendingByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return serializeAll(data), nil
}
