package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// AcceptInvitation pending to accepted, stamps acceptedAt
func (uc *collaboratorUsecaseImpl) AcceptInvitation(ctx context.Context, userID, weddingID string) (result domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:AcceptInvitation")
	defer trace.Finish()

	return uc.respondInvitation(ctx, userID, weddingID, domain.StatusAccepted)
}

// DeclineInvitation pending to declined
func (uc *collaboratorUsecaseImpl) DeclineInvitation(ctx context.Context, userID, weddingID string) (result domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:DeclineInvitation")
	defer trace.Finish()

	return uc.respondInvitation(ctx, userID, weddingID, domain.StatusDeclined)
}

// respondInvitation move pending invitation of the user to terminal status with one compare-and-update.
// An unbound invitation addressed to the user email is bound in the same update
func (uc *collaboratorUsecaseImpl) respondInvitation(ctx context.Context, userID, weddingID string, status domain.Status) (result domain.ResponseCollaborator, err error) {
	collaboratorRepo := uc.repo.CollaboratorRepo()
	pending := domain.StatusPending
	now := uc.now()
	patch := domain.CollaboratorPatch{Status: &status, ExpectStatus: &pending}
	if status == domain.StatusAccepted {
		patch.AcceptedAt = &now
	}

	collaborator, err := collaboratorRepo.FindByWeddingAndUser(ctx, weddingID, userID)
	switch {
	case err == nil:
		if collaborator.Status != domain.StatusPending {
			return result, fmt.Errorf("%w: no pending invitation", domain.ErrNotFound)
		}

	case errors.Is(err, domain.ErrNotFound):
		user, err := uc.findUser(ctx, userID)
		if err != nil {
			return result, err
		}
		email, err := userEmail(user)
		if err != nil {
			return result, fmt.Errorf("%w: no pending invitation", domain.ErrNotFound)
		}
		collaborator, err = collaboratorRepo.FindByWeddingAndEmail(ctx, weddingID, email)
		if err != nil {
			return result, err
		}
		if collaborator.IsBound() || collaborator.Status != domain.StatusPending {
			return result, fmt.Errorf("%w: no pending invitation", domain.ErrNotFound)
		}
		patch.UserID = &userID
		patch.ExpectUnbound = true

	default:
		return result, err
	}

	if err = collaboratorRepo.Update(ctx, collaborator.ID, patch); err != nil {
		return result, storeError(err)
	}
	patch.Apply(collaborator, now)
	return serialize(collaborator), nil
}
