package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/stretchr/testify/require"
)

// seedIdentity inserts an identity row so profile completion has something
// to attach to.
func seedIdentity(t *testing.T, st store.Store, email string) domain.Identity {
	t.Helper()
	ident := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "argon2:unused",
	}
	require.NoError(t, st.Identities().CreateIdentity(context.Background(), ident))
	return ident
}

// seedAgent inserts an identity plus a completed profile, optionally a
// manager, with created_at spaced out by the caller via sleep-free
// distinct inserts (ULID ids preserve insert order, created_at is set by
// the store).
func seedAgent(t *testing.T, st store.Store, email string, manager bool) domain.Agent {
	t.Helper()
	ctx := context.Background()

	ident := seedIdentity(t, st, email)
	agent := domain.Agent{
		ID:     ident.ID,
		Name:   strings.Split(email, "@")[0],
		Email:  email,
		Phone:  "0400000000",
		Active: true,
	}
	require.NoError(t, st.Agents().UpsertProfile(ctx, agent))
	if manager {
		require.NoError(t, st.Agents().SetManager(ctx, ident.ID, true))
	}

	stored, err := st.Agents().GetAgentByID(ctx, ident.ID)
	require.NoError(t, err)
	return stored
}

func TestCompleteProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AgentService{Store: st, Blobs: newMemBlobs()}

	ident := seedIdentity(t, st, "jane@agency.example")

	t.Run("rejects empty or non-numeric fields", func(t *testing.T) {
		_, err := svc.CompleteProfile(ctx, ident.ID, "", "0400000000")
		require.ErrorIs(t, err, ErrInvalidProfile)

		_, err = svc.CompleteProfile(ctx, ident.ID, "Jane Doe", "not-a-phone")
		require.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("creates a non-manager active profile", func(t *testing.T) {
		agent, err := svc.CompleteProfile(ctx, ident.ID, "Jane Doe", "251911000000")
		require.NoError(t, err)
		require.Equal(t, ident.ID, agent.ID)
		require.Equal(t, "Jane Doe", agent.Name)
		require.Equal(t, "jane@agency.example", agent.Email)
		require.Equal(t, "251911000000", agent.Phone)
		require.False(t, agent.Manager)
		require.True(t, agent.Active)
	})

	t.Run("retried submit converges on one row", func(t *testing.T) {
		first, err := svc.CompleteProfile(ctx, ident.ID, "Jane Doe", "251911000000")
		require.NoError(t, err)

		second, err := svc.CompleteProfile(ctx, ident.ID, "Jane D.", "251911000001")
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, "Jane D.", second.Name)
		require.Equal(t, first.CreatedAt, second.CreatedAt)

		agents, err := svc.ListAgents(ctx)
		require.NoError(t, err)
		require.Len(t, agents, 1)
	})

	t.Run("upsert never grants manager", func(t *testing.T) {
		require.NoError(t, st.Agents().SetManager(ctx, ident.ID, true))

		again, err := svc.CompleteProfile(ctx, ident.ID, "Jane Doe", "251911000000")
		require.NoError(t, err)
		require.True(t, again.Manager)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.CompleteProfile(ctx, idx.New().String(), "Ghost", "0400000000")
		require.ErrorIs(t, err, ErrAgentNotFound)
	})
}

func TestSetManagerStatusSeniority(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AgentService{Store: st, Blobs: newMemBlobs()}

	senior := seedAgent(t, st, "senior@agency.example", true)
	time.Sleep(5 * time.Millisecond) // distinct created_at
	junior := seedAgent(t, st, "junior@agency.example", true)
	require.True(t, senior.CreatedAt.Before(junior.CreatedAt))

	t.Run("junior cannot demote senior", func(t *testing.T) {
		_, err := svc.SetManagerStatus(ctx, junior.ID, senior.ID, false)
		require.ErrorIs(t, err, ErrInsufficientSeniority)

		got, err := svc.GetAgent(ctx, senior.ID)
		require.NoError(t, err)
		require.True(t, got.Manager)
	})

	t.Run("senior can demote junior", func(t *testing.T) {
		got, err := svc.SetManagerStatus(ctx, senior.ID, junior.ID, false)
		require.NoError(t, err)
		require.False(t, got.Manager)
	})

	t.Run("promotion is not guarded", func(t *testing.T) {
		// Junior (now demoted) target is not a manager, so even the
		// junior-most manager can promote anyone.
		got, err := svc.SetManagerStatus(ctx, senior.ID, junior.ID, true)
		require.NoError(t, err)
		require.True(t, got.Manager)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := svc.SetManagerStatus(ctx, senior.ID, idx.New().String(), true)
		require.ErrorIs(t, err, ErrAgentNotFound)
	})
}

func TestSetActiveStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	blobs := newMemBlobs()
	svc := &AgentService{Store: st, Blobs: blobs}

	manager := seedAgent(t, st, "mgr@agency.example", true)
	time.Sleep(5 * time.Millisecond)
	agent := seedAgent(t, st, "agent@agency.example", false)

	// Give the agent an avatar.
	require.NoError(t, blobs.Upload(ctx, "avatars/pic.jpg", strings.NewReader("jpeg")))
	require.NoError(t, st.Agents().SetAvatarPath(ctx, agent.ID, "avatars/pic.jpg"))

	t.Run("deactivation stamps time and clears avatar once", func(t *testing.T) {
		got, err := svc.SetActiveStatus(ctx, manager.ID, agent.ID, false)
		require.NoError(t, err)
		require.False(t, got.Active)
		require.NotNil(t, got.DeactivatedAt)
		require.Empty(t, got.AvatarPath)
		require.Equal(t, 1, blobs.removeCount())

		stored, err := svc.GetAgent(ctx, agent.ID)
		require.NoError(t, err)
		require.False(t, stored.Active)
		require.NotNil(t, stored.DeactivatedAt)
		require.Empty(t, stored.AvatarPath)
	})

	t.Run("repeated deactivation issues no more removals", func(t *testing.T) {
		got, err := svc.SetActiveStatus(ctx, manager.ID, agent.ID, false)
		require.NoError(t, err)
		require.False(t, got.Active)
		require.Equal(t, 1, blobs.removeCount())
	})

	t.Run("reactivation clears the stamp and leaves the avatar alone", func(t *testing.T) {
		got, err := svc.SetActiveStatus(ctx, manager.ID, agent.ID, true)
		require.NoError(t, err)
		require.True(t, got.Active)
		require.Nil(t, got.DeactivatedAt)
		require.Empty(t, got.AvatarPath)
		require.Equal(t, 1, blobs.removeCount())
	})

	t.Run("junior cannot deactivate a senior manager", func(t *testing.T) {
		junior := seedAgent(t, st, "junior2@agency.example", true)
		_, err := svc.SetActiveStatus(ctx, junior.ID, manager.ID, false)
		require.ErrorIs(t, err, ErrInsufficientSeniority)
	})
}

func TestSeniorityGuardsOnlyPrivilegeRemoval(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AgentService{Store: st, Blobs: newMemBlobs()}

	senior := seedAgent(t, st, "senior@agency.example", true)
	time.Sleep(5 * time.Millisecond) // distinct created_at
	junior := seedAgent(t, st, "junior@agency.example", true)
	require.True(t, senior.CreatedAt.Before(junior.CreatedAt))

	t.Run("junior can reactivate a senior manager", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, st.Agents().SetActive(ctx, senior.ID, false, &now))

		got, err := svc.SetActiveStatus(ctx, junior.ID, senior.ID, true)
		require.NoError(t, err)
		require.True(t, got.Active)
		require.Nil(t, got.DeactivatedAt)
	})

	t.Run("promote no-op against a senior manager returns the row", func(t *testing.T) {
		got, err := svc.SetManagerStatus(ctx, junior.ID, senior.ID, true)
		require.NoError(t, err)
		require.True(t, got.Manager)
	})

	t.Run("deactivate no-op against an inactive senior manager returns the row", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, st.Agents().SetActive(ctx, senior.ID, false, &now))

		got, err := svc.SetActiveStatus(ctx, junior.ID, senior.ID, false)
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("actual removal is still refused", func(t *testing.T) {
		_, err := svc.SetActiveStatus(ctx, junior.ID, senior.ID, true)
		require.NoError(t, err)

		_, err = svc.SetActiveStatus(ctx, junior.ID, senior.ID, false)
		require.ErrorIs(t, err, ErrInsufficientSeniority)

		_, err = svc.SetManagerStatus(ctx, junior.ID, senior.ID, false)
		require.ErrorIs(t, err, ErrInsufficientSeniority)
	})
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	blobs := newMemBlobs()
	svc := &AgentService{Store: st, Blobs: blobs}

	agent := seedAgent(t, st, "pic@agency.example", false)

	t.Run("rejects unsupported types", func(t *testing.T) {
		_, err := svc.UploadAvatar(ctx, agent.ID, "avatar.gif", strings.NewReader("gif"))
		require.ErrorIs(t, err, ErrUnsupportedAvatarType)
	})

	t.Run("stores image and records path", func(t *testing.T) {
		path, err := svc.UploadAvatar(ctx, agent.ID, "avatar.jpg", strings.NewReader("jpeg"))
		require.NoError(t, err)
		require.Equal(t, "avatars/"+agent.ID+".jpg", path)

		stored, err := svc.GetAgent(ctx, agent.ID)
		require.NoError(t, err)
		require.Equal(t, path, stored.AvatarPath)
	})

	t.Run("replacing with a new extension removes the old blob", func(t *testing.T) {
		path, err := svc.UploadAvatar(ctx, agent.ID, "avatar.png", strings.NewReader("png"))
		require.NoError(t, err)
		require.Equal(t, "avatars/"+agent.ID+".png", path)
		require.Equal(t, 1, blobs.removeCount())
	})
}
