package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
)

func Test_collaboratorUsecaseImpl_JoinByCode(t *testing.T) {
	ctx := context.Background()
	carol := shareddomain.User{ID: "u-carol", Email: "carol@example.com", Name: "Carol"}

	t.Run("Testcase #1: Positive, invited before registering then join", func(t *testing.T) {
		f := newFixture()
		res, err := f.uc.Invite(ctx, ownerO, weddingW, &domain.RequestInvite{Email: "alice@example.com", Name: "Alice", Role: "planner"})
		f.uc.dispatchWG.Wait()
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, res.Status)

		// alice registers after the invitation was sent
		alice := &shareddomain.User{ID: "u-alice", Email: "Alice@example.com", Name: "Alice"}
		f.user.ExpectedCalls = nil
		f.user.On("FindByID", mock.Anything, "u-alice").Return(alice, nil)

		joined, err := f.uc.JoinByCode(ctx, "u-alice", weddingW, "")
		assert.NoError(t, err)
		assert.Equal(t, res.ID, joined.ID)
		assert.Equal(t, "u-alice", joined.UserID)
		assert.Equal(t, domain.StatusAccepted, joined.Status)
		assert.Equal(t, domain.RolePlanner, joined.Role)

		access, err := f.uc.Resolve(ctx, "u-alice", weddingW)
		assert.NoError(t, err)
		assert.Equal(t, domain.PermissionsFor(domain.RolePlanner), access.Permissions)
		assert.True(t, access.Allows(domain.CapabilityInviteOthers))
		assert.False(t, access.Allows(domain.CapabilityManageRoles))
	})

	t.Run("Testcase #2: Positive, new collaborator with default role other", func(t *testing.T) {
		f := newFixture(carol)
		res, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleOther, res.Role)
		assert.Equal(t, domain.StatusAccepted, res.Status)
		assert.Equal(t, "carol@example.com", res.Email)
		assert.Equal(t, domain.Permissions{CanView: true}, res.Permissions)
	})

	t.Run("Testcase #3: Positive, explicit role", func(t *testing.T) {
		f := newFixture(carol)
		res, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "Sibling")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleSibling, res.Role)
	})

	t.Run("Testcase #4: Negative, join twice", func(t *testing.T) {
		f := newFixture(carol)
		_, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.NoError(t, err)
		_, err = f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #5: Negative, pending bound invitation must be accepted", func(t *testing.T) {
		f := newFixture(carol)
		f.seed(t, weddingW, "carol@example.com", strPtr("u-carol"), domain.RoleFriend, domain.StatusPending)
		_, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.ErrorIs(t, err, domain.ErrInvitationPending)
	})

	t.Run("Testcase #6: Negative, declined user can not rejoin", func(t *testing.T) {
		f := newFixture(carol)
		f.seed(t, weddingW, "carol@example.com", strPtr("u-carol"), domain.RoleFriend, domain.StatusDeclined)
		_, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #7: Negative, owner join own wedding", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.JoinByCode(ctx, ownerO, weddingW, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #8: Negative, unknown wedding", func(t *testing.T) {
		f := newFixture(carol)
		_, err := f.uc.JoinByCode(ctx, "u-carol", "w-unknown", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Testcase #9: Negative, owner role", func(t *testing.T) {
		f := newFixture(carol)
		_, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "owner")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Testcase #10: Negative, email slot taken by other account", func(t *testing.T) {
		f := newFixture(carol)
		f.seed(t, weddingW, "carol@example.com", strPtr("u-carol-old"), domain.RoleFriend, domain.StatusAccepted)
		_, err := f.uc.JoinByCode(ctx, "u-carol", weddingW, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyCollaborator)
	})

	t.Run("Testcase #11: Negative, account without valid email", func(t *testing.T) {
		dave := shareddomain.User{ID: "u-dave", Email: "", Name: "Dave"}
		erin := shareddomain.User{ID: "u-erin", Email: "not-an-email", Name: "Erin"}
		f := newFixture(dave, erin)

		_, err := f.uc.JoinByCode(ctx, "u-dave", weddingW, "")
		assert.True(t, domain.IsValidationError(err))
		_, err = f.uc.JoinByCode(ctx, "u-erin", weddingW, "")
		assert.True(t, domain.IsValidationError(err))
		assert.NotErrorIs(t, err, domain.ErrAlreadyCollaborator)

		records, err := f.collaborator.FetchByWedding(ctx, weddingW)
		assert.NoError(t, err)
		assert.Empty(t, records)

		_, err = f.uc.AcceptInvitation(ctx, "u-dave", weddingW)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		list, err := f.uc.ListMyInvitations(ctx, "u-dave")
		assert.NoError(t, err)
		assert.Empty(t, list)
	})
}
