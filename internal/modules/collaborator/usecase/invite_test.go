package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	mocksharednotification "github.com/golangid/wedding-collab/pkg/mocks/shared/notification"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/pkg/shared/notification"
)

func Test_collaboratorUsecaseImpl_Invite(t *testing.T) {
	ctx := context.Background()
	bob := shareddomain.User{ID: "u-bob", Email: "bob@example.com", Name: "Bob"}
	owner := shareddomain.User{ID: ownerO, Email: "owner@example.com", Name: "Olivia"}

	t.Run("Testcase #1: Positive, unknown email is pending and unbound", func(t *testing.T) {
		f := newFixture()
		res, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: " Alice@Example.com ", Name: "Alice", Role: "planner"})
		f.uc.dispatchWG.Wait()

		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", res.Email)
		assert.Equal(t, domain.StatusPending, res.Status)
		assert.Empty(t, res.UserID)
		assert.Empty(t, res.AcceptedAt)
		assert.Equal(t, domain.PermissionsFor(domain.RolePlanner), res.Permissions)
		f.sender.AssertCalled(t, "SendInvitation", mock.Anything, notification.Invitation{
			WeddingID: weddingW, WeddingName: "O & P", Email: "alice@example.com",
			Name: "Alice", Role: "planner", InvitedBy: ownerO,
		})
	})

	t.Run("Testcase #2: Positive, known email is accepted and bound", func(t *testing.T) {
		f := newFixture(bob)
		res, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "bob@example.com", Role: "best_man"})
		f.uc.dispatchWG.Wait()

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, res.Status)
		assert.Equal(t, "u-bob", res.UserID)
		assert.Equal(t, "Bob", res.Name)
		assert.NotEmpty(t, res.AcceptedAt)

		stored, err := f.collaborator.FindByWeddingAndUser(ctx, weddingW, "u-bob")
		assert.NoError(t, err)
		assert.Equal(t, domain.PermissionsFor(domain.RoleBestMan), stored.Permissions)
	})

	t.Run("Testcase #3: Negative, second invite for same email", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "alice@example.com", Role: "planner"})
		assert.NoError(t, err)
		_, err = f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "ALICE@example.com", Role: "friend"})
		f.uc.dispatchWG.Wait()

		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
		list, _ := f.collaborator.FetchByWedding(ctx, weddingW)
		assert.Len(t, list, 1)
	})

	t.Run("Testcase #4: Negative, invite wedding owner", func(t *testing.T) {
		f := newFixture(owner)
		_, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "owner@example.com", Role: "bride"})
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #5: Negative, user already bound with another email", func(t *testing.T) {
		f := newFixture(bob)
		f.seed(t, weddingW, "bob.old@example.com", strPtr("u-bob"), domain.RoleFriend, domain.StatusAccepted)
		_, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "bob@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #6: Negative, validation error", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "not-an-email", Role: "owner"})

		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields.ToMap(), "email")
		assert.Contains(t, ve.Fields.ToMap(), "role")

		_, err = f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "a@example.com", Role: "dragon"})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Testcase #7: Negative, inviter without capability", func(t *testing.T) {
		f := newFixture()
		f.seed(t, weddingW, "bob@example.com", strPtr("u-bob"), domain.RoleFriend, domain.StatusAccepted)
		f.seed(t, weddingW, "alice@example.com", strPtr("u-alice"), domain.RolePlanner, domain.StatusPending)

		_, err := f.uc.Invite(ctx, "u-bob", weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.uc.Invite(ctx, "u-alice", weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.uc.Invite(ctx, "u-stranger", weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Testcase #8: Positive, accepted planner can invite", func(t *testing.T) {
		f := newFixture()
		f.seed(t, weddingW, "alice@example.com", strPtr("u-alice"), domain.RolePlanner, domain.StatusAccepted)
		res, err := f.uc.Invite(ctx, "u-alice", weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "sibling"})
		f.uc.dispatchWG.Wait()
		assert.NoError(t, err)
		assert.Equal(t, "u-alice", res.InvitedBy)
	})

	t.Run("Testcase #9: Negative, unknown wedding is indistinguishable from no access", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Invite(ctx, ownerO, "w-unknown", &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NotErrorIs(t, err, domain.ErrNotFound)

		_, err = f.uc.Invite(ctx, "u-stranger", weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = f.uc.Invite(ctx, "u-stranger", "w-unknown", &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Testcase #10: Positive, notification failure is swallowed", func(t *testing.T) {
		f := newFixture()
		sender := &mocksharednotification.InvitationSender{}
		sender.On("SendInvitation", mock.Anything, mock.Anything).Return(errors.New("kafka: client has run out of available brokers"))
		f.uc.sender = sender

		res, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		f.uc.dispatchWG.Wait()
		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		sender.AssertNumberOfCalls(t, "SendInvitation", 1)
	})

	t.Run("Testcase #11: Positive, notification outlives canceled request", func(t *testing.T) {
		f := newFixture()
		sender := &mocksharednotification.InvitationSender{}
		sender.On("SendInvitation", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.Anything).Return(nil)
		f.uc.sender = sender

		reqCtx, cancel := context.WithCancel(ctx)
		_, err := f.uc.Invite(reqCtx, ownerO, weddingW, &domain.RequestInvite{Email: "carol@example.com", Role: "friend"})
		cancel()
		f.uc.dispatchWG.Wait()
		assert.NoError(t, err)
		sender.AssertExpectations(t)
	})
}

func Test_collaboratorUsecaseImpl_InviteConcurrent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const n = 25
	var (
		wg               sync.WaitGroup
		mu               sync.Mutex
		success, already int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "race@example.com", Role: "friend"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, domain.ErrAlreadyCollaborator):
				already++
			}
		}()
	}
	wg.Wait()
	f.uc.dispatchWG.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, n-1, already)
	list, _ := f.collaborator.FetchByWedding(ctx, weddingW)
	assert.Len(t, list, 1)
	f.sender.AssertNumberOfCalls(t, "SendInvitation", 1)
}
