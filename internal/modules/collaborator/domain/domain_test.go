package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangid/wedding-collab/candihelper"
)

func TestPermissionsFor(t *testing.T) {
	tests := []struct {
		role Role
		want Permissions
	}{
		{RoleOwner, Permissions{true, true, true, true, true, true}},
		{RoleBride, Permissions{true, true, true, true, true, false}},
		{RoleGroom, Permissions{true, true, true, true, true, false}},
		{RolePlanner, Permissions{true, true, true, true, true, false}},
		{RoleMaidOfHonor, Permissions{true, true, false, false, false, false}},
		{RoleBestMan, Permissions{true, true, false, false, false, false}},
		{RoleParent, Permissions{true, false, true, false, false, false}},
		{RoleSibling, Permissions{CanView: true}},
		{RoleFriend, Permissions{CanView: true}},
		{RoleOther, Permissions{CanView: true}},
		{Role("unknown"), Permissions{CanView: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := PermissionsFor(tt.role)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.CanView)
		})
	}
}

func TestParseRole(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		role, err := ParseRole(" Maid_Of_Honor ")
		assert.NoError(t, err)
		assert.Equal(t, RoleMaidOfHonor, role)
	})
	t.Run("Testcase #2: Negative", func(t *testing.T) {
		_, err := ParseRole("caterer")
		assert.True(t, IsValidationError(err))
	})
	t.Run("Testcase #3: Owner is not assignable", func(t *testing.T) {
		assert.False(t, RoleOwner.Assignable())
		for _, r := range Roles() {
			if r != RoleOwner {
				assert.True(t, r.Assignable(), r)
			}
		}
	})
}

func TestCollaboratorSetRole(t *testing.T) {
	c := &Collaborator{}
	c.SetRole(RoleParent)
	assert.Equal(t, RoleParent, c.Role)
	assert.Equal(t, PermissionsFor(RoleParent), c.Permissions)
}

func TestCollaboratorPatchApply(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	accepted, pending := StatusAccepted, StatusPending
	userID := "u-alice"

	t.Run("Testcase #1: Positive, bind and accept unbound pending invitation", func(t *testing.T) {
		c := &Collaborator{Status: StatusPending, Role: RolePlanner, Permissions: PermissionsFor(RolePlanner)}
		patch := CollaboratorPatch{UserID: &userID, Status: &accepted, AcceptedAt: &now, ExpectStatus: &pending, ExpectUnbound: true}

		require.True(t, patch.Apply(c, now))
		assert.Equal(t, "u-alice", *c.UserID)
		assert.Equal(t, StatusAccepted, c.Status)
		assert.Equal(t, now, *c.AcceptedAt)
		assert.Equal(t, now, c.UpdatedAt)
	})

	t.Run("Testcase #2: Negative, status guard mismatch", func(t *testing.T) {
		c := &Collaborator{Status: StatusDeclined}
		patch := CollaboratorPatch{Status: &accepted, ExpectStatus: &pending}
		assert.False(t, patch.Apply(c, now))
		assert.Equal(t, StatusDeclined, c.Status)
	})

	t.Run("Testcase #3: Negative, unbound guard mismatch", func(t *testing.T) {
		other := "u-bob"
		c := &Collaborator{Status: StatusPending, UserID: &other}
		patch := CollaboratorPatch{UserID: &userID, ExpectUnbound: true}
		assert.False(t, patch.Apply(c, now))
		assert.Equal(t, "u-bob", *c.UserID)
	})

	t.Run("Testcase #4: Positive, role patch updates permissions", func(t *testing.T) {
		role := RoleBestMan
		c := &Collaborator{Role: RolePlanner, Permissions: PermissionsFor(RolePlanner)}
		patch := CollaboratorPatch{Role: &role}
		assert.Equal(t, PermissionsFor(RoleBestMan), *patch.Permissions())
		require.True(t, patch.Apply(c, now))
		assert.Equal(t, PermissionsFor(RoleBestMan), c.Permissions)
	})
}

func TestAccessAllows(t *testing.T) {
	assert.True(t, OwnerAccess().Allows(CapabilityManageRoles))

	planner := Access{Role: RolePlanner, Permissions: PermissionsFor(RolePlanner), Status: StatusAccepted}
	assert.True(t, planner.Allows(CapabilityInviteOthers))
	assert.False(t, planner.Allows(CapabilityManageRoles))

	planner.Status = StatusPending
	assert.False(t, planner.Allows(CapabilityView))
	assert.False(t, Permissions{CanView: true}.Allows(Capability("unknown")))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", errors.New("invalid email"))
	assert.EqualError(t, err, "validation error: email: invalid email")

	wrapped := ValidationErrorFrom(candihelper.NewMultiError().Append("role", errors.New("required")))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrForbidden))
}

func TestResponseCollaboratorSerialize(t *testing.T) {
	invitedAt := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	userID := "u-alice"
	c := &Collaborator{
		ID: "c1", WeddingID: "w1", UserID: &userID, Email: "alice@x.com", Name: "Alice",
		Status: StatusAccepted, InvitedBy: "u-owner", InvitedAt: invitedAt, AcceptedAt: &invitedAt,
	}
	c.SetRole(RolePlanner)

	var res ResponseCollaborator
	res.Serialize(c)
	assert.Equal(t, "u-alice", res.UserID)
	assert.Equal(t, "2026-05-01T08:00:00Z", res.InvitedAt)
	assert.Equal(t, "2026-05-01T08:00:00Z", res.AcceptedAt)
	assert.True(t, res.Permissions.CanInviteOthers)
}
