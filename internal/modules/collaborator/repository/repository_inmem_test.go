package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
)

func newPending(weddingID, email string) *domain.Collaborator {
	c := &domain.Collaborator{
		WeddingID: weddingID,
		Email:     email,
		Status:    domain.StatusPending,
		InvitedBy: "owner-1",
		InvitedAt: time.Now(),
	}
	c.SetRole(domain.RolePlanner)
	return c
}

func TestCollaboratorRepoInMem_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, insert and find by email", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		c := newPending("w1", "alice@example.com")
		assert.NoError(t, repo.Insert(ctx, c))
		assert.NotEmpty(t, c.ID)

		found, err := repo.FindByWeddingAndEmail(ctx, "w1", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, domain.PermissionsFor(domain.RolePlanner), found.Permissions)
	})

	t.Run("Testcase #2: Negative, duplicate email on same wedding", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		assert.NoError(t, repo.Insert(ctx, newPending("w1", "alice@example.com")))
		err := repo.Insert(ctx, newPending("w1", "alice@example.com"))
		assert.True(t, errors.Is(err, domain.ErrDuplicateCollaboration))
	})

	t.Run("Testcase #3: Positive, same email on other wedding", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		assert.NoError(t, repo.Insert(ctx, newPending("w1", "alice@example.com")))
		assert.NoError(t, repo.Insert(ctx, newPending("w2", "alice@example.com")))
	})

	t.Run("Testcase #4: Negative, duplicate bound user on same wedding", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		userID := "u1"
		a := newPending("w1", "a@example.com")
		a.UserID = &userID
		b := newPending("w1", "b@example.com")
		b.UserID = &userID
		assert.NoError(t, repo.Insert(ctx, a))
		assert.ErrorIs(t, repo.Insert(ctx, b), domain.ErrDuplicateCollaboration)
	})

	t.Run("Testcase #5: Positive, concurrent insert has exactly one winner", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		var success int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := repo.Insert(ctx, newPending("w1", "race@example.com")); err == nil {
					atomic.AddInt32(&success, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), success)

		list, _ := repo.FetchByWedding(ctx, "w1")
		assert.Len(t, list, 1)
	})
}

func TestCollaboratorRepoInMem_Update(t *testing.T) {
	ctx := context.Background()
	pending, accepted := domain.StatusPending, domain.StatusAccepted
	userID := "u1"

	t.Run("Testcase #1: Positive, bind pending invitation", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		c := newPending("w1", "alice@example.com")
		assert.NoError(t, repo.Insert(ctx, c))

		now := time.Now()
		err := repo.Update(ctx, c.ID, domain.CollaboratorPatch{
			UserID: &userID, Status: &accepted, AcceptedAt: &now,
			ExpectStatus: &pending, ExpectUnbound: true,
		})
		assert.NoError(t, err)

		found, err := repo.FindByWeddingAndUser(ctx, "w1", userID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, found.Status)
		assert.NotNil(t, found.AcceptedAt)
	})

	t.Run("Testcase #2: Negative, guard mismatch", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		c := newPending("w1", "alice@example.com")
		c.Status = domain.StatusDeclined
		assert.NoError(t, repo.Insert(ctx, c))

		err := repo.Update(ctx, c.ID, domain.CollaboratorPatch{Status: &accepted, ExpectStatus: &pending})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		found, _ := repo.FindByID(ctx, c.ID)
		assert.Equal(t, domain.StatusDeclined, found.Status)
	})

	t.Run("Testcase #3: Positive, role change rewrites permissions", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		c := newPending("w1", "alice@example.com")
		assert.NoError(t, repo.Insert(ctx, c))

		role := domain.RoleFriend
		assert.NoError(t, repo.Update(ctx, c.ID, domain.CollaboratorPatch{Role: &role}))
		found, _ := repo.FindByID(ctx, c.ID)
		assert.Equal(t, domain.RoleFriend, found.Role)
		assert.Equal(t, domain.Permissions{CanView: true}, found.Permissions)
	})

	t.Run("Testcase #4: Negative, unknown id", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		assert.ErrorIs(t, repo.Update(ctx, "missing", domain.CollaboratorPatch{}), domain.ErrNotFound)
	})

	t.Run("Testcase #5: Negative, bind user already collaborating", func(t *testing.T) {
		repo := NewCollaboratorRepoInMem()
		bound := newPending("w1", "joined@example.com")
		bound.UserID = &userID
		assert.NoError(t, repo.Insert(ctx, bound))
		c := newPending("w1", "alice@example.com")
		assert.NoError(t, repo.Insert(ctx, c))

		err := repo.Update(ctx, c.ID, domain.CollaboratorPatch{UserID: &userID, ExpectUnbound: true})
		assert.ErrorIs(t, err, domain.ErrDuplicateCollaboration)
	})
}

func TestCollaboratorRepoInMem_Query(t *testing.T) {
	ctx := context.Background()
	repo := NewCollaboratorRepoInMem()
	userID := "u1"

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	first := newPending("w1", "alice@example.com")
	first.UserID, first.Status, first.AcceptedAt = &userID, domain.StatusAccepted, &older
	second := newPending("w2", "alice@example.com")
	second.UserID, second.Status, second.AcceptedAt = &userID, domain.StatusAccepted, &newer
	third := newPending("w3", "alice@example.com")
	for _, c := range []*domain.Collaborator{first, second, third} {
		assert.NoError(t, repo.Insert(ctx, c))
	}

	t.Run("Testcase #1: Positive, most recently accepted", func(t *testing.T) {
		found, err := repo.FindAcceptedByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "w2", found.WeddingID)
	})

	t.Run("Testcase #2: Negative, no accepted record", func(t *testing.T) {
		_, err := repo.FindAcceptedByUser(ctx, "u2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Testcase #3: Positive, pending by email", func(t *testing.T) {
		list, err := repo.FetchPendingByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "w3", list[0].WeddingID)
	})

	t.Run("Testcase #4: Positive, delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, third.ID))
		assert.ErrorIs(t, repo.Delete(ctx, third.ID), domain.ErrNotFound)
		_, err := repo.FindByID(ctx, third.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
