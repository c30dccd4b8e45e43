package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// Resolve effective access of user on wedding.
// Order: explicit collaboration, ownership, then the single accepted collaboration of the user which must point to the same wedding
func (uc *collaboratorUsecaseImpl) Resolve(ctx context.Context, userID, weddingID string) (access domain.Access, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:Resolve")
	defer trace.Finish()
	trace.SetTag("user_id", userID)
	trace.SetTag("wedding_id", weddingID)

	collaborator, err := uc.repo.CollaboratorRepo().FindByWeddingAndUser(ctx, weddingID, userID)
	if err == nil {
		return collaborator.Access(), nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return access, err
	}

	wedding, err := uc.repo.WeddingRepo().FindByID(ctx, weddingID)
	switch {
	case err == nil:
		if wedding.IsOwner(userID) {
			return domain.OwnerAccess(), nil
		}
	case errors.Is(err, shareddomain.ErrWeddingNotFound):
		// unknown wedding has no owner, fallback below still applies
	default:
		return access, err
	}

	accepted, err := uc.repo.CollaboratorRepo().FindAcceptedByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return access, fmt.Errorf("%w: user has no collaboration", domain.ErrNotFound)
	}
	if err != nil {
		return access, err
	}
	if accepted.WeddingID != weddingID {
		return access, fmt.Errorf("%w: user collaborates on another wedding", domain.ErrForbidden)
	}
	return accepted.Access(), nil
}

// findWedding wedding registry lookup, unknown wedding is domain.ErrNotFound
func (uc *collaboratorUsecaseImpl) findWedding(ctx context.Context, weddingID string) (*shareddomain.Wedding, error) {
	wedding, err := uc.repo.WeddingRepo().FindByID(ctx, weddingID)
	if errors.Is(err, shareddomain.ErrWeddingNotFound) {
		return nil, fmt.Errorf("%w: wedding %s", domain.ErrNotFound, weddingID)
	}
	return wedding, err
}

// findUser user directory lookup, unknown user is domain.ErrNotFound
func (uc *collaboratorUsecaseImpl) findUser(ctx context.Context, userID string) (*shareddomain.User, error) {
	user, err := uc.repo.UserRepo().FindByID(ctx, userID)
	if errors.Is(err, shareddomain.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return user, err
}

// userEmail normalized account email, directory entry without a valid address is a ValidationError on "email"
func userEmail(user *shareddomain.User) (string, error) {
	email, ok := candihelper.NormalizeEmail(user.Email)
	if !ok {
		return "", domain.NewValidationError("email", fmt.Errorf("account %s has no valid email address", user.ID))
	}
	return email, nil
}
