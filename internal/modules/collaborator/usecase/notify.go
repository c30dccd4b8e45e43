package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap/zapcore"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/logger"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/pkg/shared/notification"
)

// dispatchInvitation send invitation in background, request context cancellation does not abort it and failure never reach the caller
func (uc *collaboratorUsecaseImpl) dispatchInvitation(ctx context.Context, wedding *shareddomain.Wedding, data *domain.Collaborator) {
	invitation := notification.Invitation{
		WeddingID:   data.WeddingID,
		WeddingName: wedding.Name,
		Email:       data.Email,
		Name:        data.Name,
		Role:        data.Role.String(),
		InvitedBy:   data.InvitedBy,
	}

	uc.dispatchWG.Add(1)
	go func(ctx context.Context) {
		defer uc.dispatchWG.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Log(zapcore.ErrorLevel, fmt.Sprintf("panic: %v\n%s", r, debug.Stack()), "CollaboratorUsecase", "dispatch_invitation")
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, uc.notifyTimeout)
		defer cancel()

		if err := uc.sender.SendInvitation(ctx, invitation); err != nil {
			logger.Log(zapcore.ErrorLevel,
				fmt.Sprintf("send invitation to %s: %s", logger.MaskEmail(invitation.Email), err.Error()),
				"CollaboratorUsecase", "dispatch_invitation")
		}
	}(context.WithoutCancel(ctx))
}

func (uc *collaboratorUsecaseImpl) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.dispatchWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait invitation dispatch: %w", ctx.Err())
	}
}
