package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// JoinByCode self join using wedding id as code.
// Pending invitation addressed to the user email is bound and accepted, otherwise a new accepted collaborator with defaultRole is created
func (uc *collaboratorUsecaseImpl) JoinByCode(ctx context.Context, userID, weddingID, defaultRole string) (result domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:JoinByCode")
	defer trace.Finish()

	role := domain.RoleOther
	if defaultRole != "" {
		if role, err = parseAssignableRole(defaultRole); err != nil {
			return result, err
		}
	}

	wedding, err := uc.findWedding(ctx, weddingID)
	if err != nil {
		return result, err
	}
	if wedding.IsOwner(userID) {
		return result, fmt.Errorf("%w: wedding owner", domain.ErrAlreadyCollaborator)
	}

	collaboratorRepo := uc.repo.CollaboratorRepo()
	existing, err := collaboratorRepo.FindByWeddingAndUser(ctx, weddingID, userID)
	if err == nil {
		if existing.Status == domain.StatusPending {
			return result, domain.ErrInvitationPending
		}
		return result, fmt.Errorf("%w: status %s", domain.ErrAlreadyCollaborator, existing.Status)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return result, err
	}

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return result, err
	}
	email, err := userEmail(user)
	if err != nil {
		return result, err
	}
	now := uc.now()

	invitation, err := collaboratorRepo.FindByWeddingAndEmail(ctx, weddingID, email)
	switch {
	case err == nil:
		if invitation.IsBound() || invitation.Status != domain.StatusPending {
			return result, fmt.Errorf("%w: email already used on wedding", domain.ErrAlreadyCollaborator)
		}
		return uc.bindInvitation(ctx, invitation, userID, now)

	case !errors.Is(err, domain.ErrNotFound):
		return result, err
	}

	data := &domain.Collaborator{
		WeddingID:  weddingID,
		UserID:     &userID,
		Email:      email,
		Name:       user.Name,
		Status:     domain.StatusAccepted,
		InvitedBy:  userID,
		InvitedAt:  now,
		AcceptedAt: &now,
	}
	data.SetRole(role)
	if err = collaboratorRepo.Insert(ctx, data); err != nil {
		return result, storeError(err)
	}
	return serialize(data), nil
}

// bindInvitation claim unbound pending invitation, losing the race means the user or email is already taken
func (uc *collaboratorUsecaseImpl) bindInvitation(ctx context.Context, invitation *domain.Collaborator, userID string, now time.Time) (result domain.ResponseCollaborator, err error) {
	pending, accepted := domain.StatusPending, domain.StatusAccepted
	patch := domain.CollaboratorPatch{
		UserID:        &userID,
		Status:        &accepted,
		AcceptedAt:    &now,
		ExpectStatus:  &pending,
		ExpectUnbound: true,
	}

	err = uc.repo.CollaboratorRepo().Update(ctx, invitation.ID, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return result, fmt.Errorf("%w: invitation already claimed", domain.ErrAlreadyCollaborator)
	}
	if err != nil {
		return result, storeError(err)
	}
	patch.Apply(invitation, now)
	return serialize(invitation), nil
}
