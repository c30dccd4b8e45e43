package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// parseAssignableRole owner role only comes from wedding ownership
func parseAssignableRole(s string) (domain.Role, error) {
	role, err := domain.ParseRole(s)
	if err != nil {
		return role, err
	}
	if !role.Assignable() {
		return role, domain.NewValidationError("role", fmt.Errorf("role '%s' can not be assigned", role))
	}
	return role, nil
}

func validateInvite(req *domain.RequestInvite) (email, name string, role domain.Role, err error) {
	mErr := candihelper.NewMultiError()

	email, ok := candihelper.NormalizeEmail(req.Email)
	if !ok {
		mErr.Append("email", errors.New("invalid email address"))
	}
	role, roleErr := parseAssignableRole(req.Role)
	var ve *domain.ValidationError
	if errors.As(roleErr, &ve) {
		mErr.Merge(ve.Fields)
	}
	if mErr.HasError() {
		return email, name, role, domain.ValidationErrorFrom(mErr)
	}
	return email, strings.TrimSpace(req.Name), role, nil
}

// Invite add collaborator by email. Known account is bound and accepted immediately, unknown email stays pending until the user joins
func (uc *collaboratorUsecaseImpl) Invite(ctx context.Context, inviterID, weddingID string, req *domain.RequestInvite) (result domain.ResponseCollaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:Invite")
	defer trace.Finish()

	email, name, role, err := validateInvite(req)
	if err != nil {
		return result, err
	}

	// authorize first, unknown wedding and missing access both answer Forbidden
	if _, err = uc.Authorize(ctx, inviterID, weddingID, domain.CapabilityInviteOthers); err != nil {
		return result, err
	}
	wedding, err := uc.findWedding(ctx, weddingID)
	if err != nil {
		return result, err
	}

	collaboratorRepo := uc.repo.CollaboratorRepo()
	_, err = collaboratorRepo.FindByWeddingAndEmail(ctx, weddingID, email)
	if err == nil {
		return result, fmt.Errorf("%w: %s already invited", domain.ErrAlreadyCollaborator, email)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return result, err
	}

	target, err := uc.repo.UserRepo().FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shareddomain.ErrUserNotFound) {
		return result, err
	}

	now := uc.now()
	data := &domain.Collaborator{
		WeddingID: weddingID,
		Email:     email,
		Name:      name,
		Status:    domain.StatusPending,
		InvitedBy: inviterID,
		InvitedAt: now,
	}
	data.SetRole(role)

	if target != nil {
		if wedding.IsOwner(target.ID) {
			return result, fmt.Errorf("%w: wedding owner", domain.ErrAlreadyCollaborator)
		}
		_, err = collaboratorRepo.FindByWeddingAndUser(ctx, weddingID, target.ID)
		if err == nil {
			return result, fmt.Errorf("%w: user already collaborates", domain.ErrAlreadyCollaborator)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return result, err
		}

		userID := target.ID
		data.UserID = &userID
		data.Status = domain.StatusAccepted
		data.AcceptedAt = &now
		if data.Name == "" {
			data.Name = target.Name
		}
	}

	if err = collaboratorRepo.Insert(ctx, data); err != nil {
		return result, storeError(err)
	}

	uc.dispatchInvitation(ctx, wedding, data)
	return serialize(data), nil
}
