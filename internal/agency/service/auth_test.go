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

func seedCredentials(t *testing.T, st store.Store, email, password string) domain.Identity {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	ident := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, st.Identities().CreateIdentity(context.Background(), ident))
	return ident
}

func TestSignInWithPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	ident := seedCredentials(t, st, "alice@agency.example", "correct-horse")

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignInWithPassword(ctx, "alice@agency.example", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.SignInWithPassword(ctx, "nobody@agency.example", "correct-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success issues session and token", func(t *testing.T) {
		result, err := svc.SignInWithPassword(ctx, " Alice@agency.example", "correct-horse")
		require.NoError(t, err)
		require.NotEmpty(t, result.AccessToken)
		require.NotEmpty(t, result.SessionToken)

		session, err := svc.Session(ctx, result.SessionToken)
		require.NoError(t, err)
		require.Equal(t, ident.ID, session.IdentityID)
	})

	t.Run("onboarding identity gets profile scopes only", func(t *testing.T) {
		result, err := svc.SignInWithPassword(ctx, "alice@agency.example", "correct-horse")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{ScopeProfileRead, ScopeProfileWrite}, result.Scope)
	})
}

func TestSignInScopesFollowRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	ident := seedCredentials(t, st, "mgr@agency.example", "correct-horse")
	require.NoError(t, st.Agents().UpsertProfile(ctx, domain.Agent{
		ID:     ident.ID,
		Name:   "Manager",
		Email:  ident.Email,
		Phone:  "0400000000",
		Active: true,
	}))

	result, err := svc.SignInWithPassword(ctx, "mgr@agency.example", "correct-horse")
	require.NoError(t, err)
	require.NotContains(t, result.Scope, ScopeAgentsManage)

	require.NoError(t, st.Agents().SetManager(ctx, ident.ID, true))

	result, err = svc.SignInWithPassword(ctx, "mgr@agency.example", "correct-horse")
	require.NoError(t, err)
	require.Contains(t, result.Scope, ScopeAgentsManage)
	require.Contains(t, result.Scope, ScopeInvitesIssue)
}

func TestSignInRefusesDeactivatedAgent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	ident := seedCredentials(t, st, "gone@agency.example", "correct-horse")
	require.NoError(t, st.Agents().UpsertProfile(ctx, domain.Agent{
		ID:     ident.ID,
		Name:   "Gone",
		Email:  ident.Email,
		Phone:  "0400000000",
		Active: true,
	}))
	now := time.Now()
	require.NoError(t, st.Agents().SetActive(ctx, ident.ID, false, &now))

	_, err := svc.SignInWithPassword(ctx, "gone@agency.example", "correct-horse")
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	seedCredentials(t, st, "alice@agency.example", "correct-horse")
	result, err := svc.SignInWithPassword(ctx, "alice@agency.example", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, result.SessionToken))

	_, err = svc.Session(ctx, result.SessionToken)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Signing out a dead token is a no-op.
	require.NoError(t, svc.SignOut(ctx, result.SessionToken))
}

func TestRenewAccessToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	ident := seedCredentials(t, st, "alice@agency.example", "correct-horse")
	result, err := svc.SignInWithPassword(ctx, "alice@agency.example", "correct-horse")
	require.NoError(t, err)

	// Completing a profile between renewals widens the scopes.
	require.NoError(t, st.Agents().UpsertProfile(ctx, domain.Agent{
		ID:     ident.ID,
		Name:   "Alice",
		Email:  ident.Email,
		Phone:  "0400000000",
		Active: true,
	}))

	renewed, err := svc.RenewAccessToken(ctx, result.SessionToken)
	require.NoError(t, err)
	require.Contains(t, renewed.Scope, ScopePropertiesWrite)

	require.NoError(t, svc.SignOut(ctx, result.SessionToken))
	_, err = svc.RenewAccessToken(ctx, result.SessionToken)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestAuth(t, st)

	ident := seedCredentials(t, st, "alice@agency.example", "old-password")

	t.Run("unknown email does not leak", func(t *testing.T) {
		require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@agency.example"))
	})

	t.Run("completes and revokes sessions", func(t *testing.T) {
		login, err := svc.SignInWithPassword(ctx, "alice@agency.example", "old-password")
		require.NoError(t, err)

		require.NoError(t, svc.RequestPasswordReset(ctx, "alice@agency.example"))

		// Grab the token hash via a fresh reset record seeded directly;
		// the mailer only logs, so build a known token instead.
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		reset := domain.PasswordReset{
			ID:         idx.New().String(),
			IdentityID: ident.ID,
			TokenHash:  cryptox.FingerprintToken(token),
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		require.NoError(t, st.PasswordResets().CreatePasswordReset(ctx, reset))

		require.ErrorIs(t, svc.CompletePasswordReset(ctx, token, "short"), ErrPasswordTooShort)
		require.NoError(t, svc.CompletePasswordReset(ctx, token, "new-password"))

		// Old sessions are dead, old password refused, token single-use.
		_, err = svc.Session(ctx, login.SessionToken)
		require.ErrorIs(t, err, ErrSessionNotFound)

		_, err = svc.SignInWithPassword(ctx, "alice@agency.example", "old-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.SignInWithPassword(ctx, "alice@agency.example", "new-password")
		require.NoError(t, err)

		require.ErrorIs(t, svc.CompletePasswordReset(ctx, token, "another-password"), ErrResetNotFound)
	})

	t.Run("expired token refused", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		reset := domain.PasswordReset{
			ID:         idx.New().String(),
			IdentityID: ident.ID,
			TokenHash:  cryptox.FingerprintToken(token),
			ExpiresAt:  time.Now().Add(-time.Minute),
		}
		require.NoError(t, st.PasswordResets().CreatePasswordReset(ctx, reset))

		require.ErrorIs(t, svc.CompletePasswordReset(ctx, token, "new-password"), ErrResetNotFound)
	})
}
