package usecase

import (
	"context"
	"fmt"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// findWeddingCollaborator collaborator of another wedding is reported as not found
func (uc *collaboratorUsecaseImpl) findWeddingCollaborator(ctx context.Context, weddingID, collaboratorID string) (*domain.Collaborator, error) {
	collaborator, err := uc.repo.CollaboratorRepo().FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}
	if collaborator.WeddingID != weddingID {
		return nil, fmt.Errorf("%w: collaborator %s", domain.ErrNotFound, collaboratorID)
	}
	return collaborator, nil
}

// ChangeRole update role and derived permissions together
func (uc *collaboratorUsecaseImpl) ChangeRole(ctx context.Context, actorID, weddingID, collaboratorID, newRole string) (result domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:ChangeRole")
	defer trace.Finish()

	role, err := parseAssignableRole(newRole)
	if err != nil {
		return result, err
	}
	if _, err = uc.Authorize(ctx, actorID, weddingID, domain.CapabilityManageRoles); err != nil {
		return result, err
	}

	collaborator, err := uc.findWeddingCollaborator(ctx, weddingID, collaboratorID)
	if err != nil {
		return result, err
	}

	patch := domain.CollaboratorPatch{Role: &role}
	if err = uc.repo.CollaboratorRepo().Update(ctx, collaborator.ID, patch); err != nil {
		return result, err
	}
	patch.Apply(collaborator, uc.now())
	return serialize(collaborator), nil
}

// Remove hard delete collaborator from wedding
func (uc *collaboratorUsecaseImpl) Remove(ctx context.Context, actorID, weddingID, collaboratorID string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:Remove")
	defer trace.Finish()

	if _, err = uc.Authorize(ctx, actorID, weddingID, domain.CapabilityManageRoles); err != nil {
		return err
	}

	collaborator, err := uc.findWeddingCollaborator(ctx, weddingID, collaboratorID)
	if err != nil {
		return err
	}
	return uc.repo.CollaboratorRepo().Delete(ctx, collaborator.ID)
}
