package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// Authorize require capability on wedding. A user without any relationship to the wedding is forbidden
func (uc *collaboratorUsecaseImpl) Authorize(ctx context.Context, userID, weddingID string, capability domain.Capability) (access domain.Access, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorUsecase:Authorize")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("capability", capability)

	access, err = uc.Resolve(ctx, userID, weddingID)
	if errors.Is(err, domain.ErrNotFound) {
		return access, fmt.Errorf("%w: no access to wedding", domain.ErrForbidden)
	}
	if err != nil {
		return access, err
	}
	if !access.Allows(capability) {
		return access, fmt.Errorf("%w: missing capability %s", domain.ErrForbidden, capability)
	}
	return access, nil
}
