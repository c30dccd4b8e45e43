package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/pkg/shared/notification"
	"github.com/golangid/wedding-collab/pkg/shared/repository"
)

// CollaboratorUsecase abstraction
type CollaboratorUsecase interface {
	Resolve(ctx context.Context, userID, weddingID string) (domain.Access, error)
	Authorize(ctx context.Context, userID, weddingID string, capability domain.Capability) (domain.Access, error)

	Invite(ctx context.Context, inviterID, weddingID string, req *domain.RequestInvite) (domain.ResponseCollaborator, error)
	AcceptInvitation(ctx context.Context, userID, weddingID string) (domain.ResponseCollaborator, error)
	DeclineInvitation(ctx context.Context, userID, weddingID string) (domain.ResponseCollaborator, error)
	JoinByCode(ctx context.Context, userID, weddingID, defaultRole string) (domain.ResponseCollaborator, error)
	ChangeRole(ctx context.Context, actorID, weddingID, collaboratorID, newRole string) (domain.ResponseCollaborator, error)
	Remove(ctx context.Context, actorID, weddingID, collaboratorID string) error

	ListCollaborators(ctx context.Context, actorID, weddingID string) ([]domain.ResponseCollaborator, error)
	ListMyInvitations(ctx context.Context, userID string) ([]domain.ResponseCollaborator, error)

	// Close wait running invitation dispatch until ctx is done
	Close(ctx context.Context) error
}

type collaboratorUsecaseImpl struct {
	repo          repository.Repository
	sender        notification.InvitationSender
	notifyTimeout time.Duration
	now           func() time.Time

	// tracks running notification dispatch
	dispatchWG sync.WaitGroup
}

// OptionFunc usecase option
type OptionFunc func(*collaboratorUsecaseImpl)

// SetRepository option func
func SetRepository(repo repository.Repository) OptionFunc {
	return func(uc *collaboratorUsecaseImpl) {
		uc.repo = repo
	}
}

// SetInvitationSender option func
func SetInvitationSender(sender notification.InvitationSender) OptionFunc {
	return func(uc *collaboratorUsecaseImpl) {
		uc.sender = sender
	}
}

// SetNotificationTimeout option func, bound of a single invitation dispatch
func SetNotificationTimeout(timeout time.Duration) OptionFunc {
	return func(uc *collaboratorUsecaseImpl) {
		uc.notifyTimeout = timeout
	}
}

// SetClock option func
func SetClock(now func() time.Time) OptionFunc {
	return func(uc *collaboratorUsecaseImpl) {
		uc.now = now
	}
}

// NewCollaboratorUsecase usecase impl constructor
func NewCollaboratorUsecase(deps dependency.Dependency, opts ...OptionFunc) CollaboratorUsecase {
	uc := &collaboratorUsecaseImpl{
		repo:          repository.GetSharedRepository(),
		sender:        notification.NewNoopSender(),
		notifyTimeout: 10 * time.Second,
		now:           time.Now,
	}
	if deps != nil {
		if sender, ok := deps.GetExtended(notification.DependencyKey).(notification.InvitationSender); ok {
			uc.sender = sender
		}
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// storeError map store unique violation to already collaborator
func storeError(err error) error {
	if errors.Is(err, domain.ErrDuplicateCollaboration) {
		return fmt.Errorf("%w: %v", domain.ErrAlreadyCollaborator, err)
	}
	return err
}

func serialize(data *domain.Collaborator) (res domain.ResponseCollaborator) {
	res.Serialize(data)
	return res
}

func serializeAll(data []domain.Collaborator) []domain.ResponseCollaborator {
	results := make([]domain.ResponseCollaborator, 0, len(data))
	for i := range data {
		results = append(results, serialize(&data[i]))
	}
	return results
}
