package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/cryptox"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestInvites(t *testing.T, st store.Store) *InviteService {
	t.Helper()
	return &InviteService{
		Store:     st,
		Auth:      newTestAuth(t, st),
		Mailer:    LogMailer{},
		InviteTTL: 5 * time.Minute,
	}
}

func TestIssueInviteValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.IssueInvite(ctx, "not-an-email", "secret-1", "mgr")
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects short temp password", func(t *testing.T) {
		_, err := svc.IssueInvite(ctx, "new@agency.example", "short", "mgr")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("rejects email of an existing agent", func(t *testing.T) {
		ident := seedIdentity(t, st, "taken@agency.example")
		agent := domain.Agent{
			ID:     ident.ID,
			Name:   "Existing",
			Email:  "taken@agency.example",
			Phone:  "0400000000",
			Active: true,
		}
		require.NoError(t, st.Agents().UpsertProfile(ctx, agent))

		_, err := svc.IssueInvite(ctx, "Taken@agency.example ", "secret-1", "mgr")
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestIssueInviteReturnsCodeAndExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	before := time.Now()
	issued, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)
	require.Len(t, issued.Code, 6)
	require.WithinDuration(t, before.Add(5*time.Minute), issued.ExpiresAt, 2*time.Second)

	// The stored invite holds a fingerprint, never the raw temp password.
	inv, err := st.Invites().GetInviteByEmailAndCode(ctx, "new@agency.example", issued.Code)
	require.NoError(t, err)
	require.Equal(t, cryptox.FingerprintToken("temp-secret"), inv.TempPasswordHash)
	require.False(t, inv.Used)
}

func TestIssueInviteReplacesPending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	first, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)

	second, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)

	// The first code is superseded, not stacked.
	if first.Code != second.Code {
		_, err = st.Invites().GetInviteByEmailAndCode(ctx, "new@agency.example", first.Code)
		require.ErrorIs(t, err, store.ErrNotFound)
	}
	_, err = st.Invites().GetInviteByEmailAndCode(ctx, "new@agency.example", second.Code)
	require.NoError(t, err)
}

func TestRedeemInviteHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	issued, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)

	result, err := svc.RedeemInvite(ctx, "New@agency.example", "temp-secret", issued.Code)
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.SessionToken)
	require.Contains(t, result.Scope, ScopeProfileWrite)

	// Identity exists and the invite is consumed.
	ident, err := st.Identities().GetIdentityByEmail(ctx, "new@agency.example")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("temp-secret", ident.PasswordHash))

	_, err = st.Invites().GetInviteByEmailAndCode(ctx, "new@agency.example", issued.Code)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedeemInviteRejectsWrongTriple(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	issued, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)

	t.Run("wrong code", func(t *testing.T) {
		wrong := "100000"
		if wrong == issued.Code {
			wrong = "100001"
		}
		_, err := svc.RedeemInvite(ctx, "new@agency.example", "temp-secret", wrong)
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("wrong temp password", func(t *testing.T) {
		_, err := svc.RedeemInvite(ctx, "new@agency.example", "wrong-secret", issued.Code)
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("wrong email", func(t *testing.T) {
		_, err := svc.RedeemInvite(ctx, "other@agency.example", "temp-secret", issued.Code)
		require.ErrorIs(t, err, ErrCodeNotFound)
	})
}

func TestRedeemInviteEnforcesExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	// Persist an already-expired invite directly.
	inv := domain.Invite{
		ID:               idx.New().String(),
		Email:            "late@agency.example",
		TempPasswordHash: cryptox.FingerprintToken("temp-secret"),
		Code:             "123456",
		CreatedBy:        "mgr",
		ExpiresAt:        time.Now().Add(-time.Minute),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	_, err := svc.RedeemInvite(ctx, "late@agency.example", "temp-secret", "123456")
	require.ErrorIs(t, err, ErrInviteExpired)

	// No identity was created for the failed redemption.
	_, err = st.Identities().GetIdentityByEmail(ctx, "late@agency.example")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedeemInviteCannotRedeemTwice(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInvites(t, st)

	issued, err := svc.IssueInvite(ctx, "new@agency.example", "temp-secret", "mgr")
	require.NoError(t, err)

	_, err = svc.RedeemInvite(ctx, "new@agency.example", "temp-secret", issued.Code)
	require.NoError(t, err)

	_, err = svc.RedeemInvite(ctx, "new@agency.example", "temp-secret", issued.Code)
	require.ErrorIs(t, err, ErrCodeNotFound)
}
