package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/cryptox"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/harborview/doorstep/pkg/jwtx"
	"github.com/harborview/doorstep/pkg/slogx"
)

// Scope names carried in access tokens. Managers receive the agent scopes
// plus the management pair.
const (
	ScopeProfileRead     = "profile:read"
	ScopeProfileWrite    = "profile:write"
	ScopePropertiesWrite = "properties:write"
	ScopeAgentsManage    = "agents:manage"
	ScopeInvitesIssue    = "invites:issue"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account deactivated")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrResetNotFound      = errors.New("reset token not found or expired")
	ErrPasswordTooShort   = errors.New("password too short")
)

// LoginResult is returned by password sign-in and invite redemption: a
// signed access token for API calls plus an opaque session token whose
// fingerprint backs the server-side session row.
type LoginResult struct {
	IdentityID   string
	AccessToken  string
	SessionToken string
	ExpiresIn    time.Duration
	Scope        []string
}

type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Mailer     Mailer
	AccessTTL  time.Duration
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

// SignInWithPassword authenticates an identity and opens a session.
//
// Deactivated agents are refused here rather than at each handler: once
// is_active is false the account cannot open new sessions at all.
func (s *AuthService) SignInWithPassword(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now()

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 1. Load identity and verify the password.
	identity, err := s.Store.Identities().GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("sign-in for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to fetch identity", slog.Any("error", err))
		return nil, err
	}
	if err := cryptox.VerifyPassword(password, identity.PasswordHash); err != nil {
		log.Info("sign-in password verification failed",
			slog.String("identity_id", identity.ID),
		)
		return nil, ErrInvalidCredentials
	}

	// 2. Refuse deactivated agents and compute scopes from the profile.
	// An identity without a profile row has just been redeemed; it gets
	// the profile scopes so it can finish onboarding.
	scopes, err := s.scopesFor(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	// 3. Open the session row.
	sessionToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate session token", slog.Any("error", err))
		return nil, err
	}

	session := domain.Session{
		ID:         idx.New().String(),
		IdentityID: identity.ID,
		TokenHash:  cryptox.FingerprintToken(sessionToken),
		ExpiresAt:  now.Add(s.SessionTTL),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return nil, err
	}

	// 4. Sign the access token.
	accessToken, err := s.Signer.Sign(jwtx.Claims{
		Subject:   identity.ID,
		Email:     identity.Email,
		SessionID: session.ID,
		Scopes:    scopes,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.AccessTTL),
	})
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return nil, err
	}

	log.Info("sign-in succeeded",
		slog.String("identity_id", identity.ID),
		slog.String("session_id", session.ID),
	)

	return &LoginResult{
		IdentityID:   identity.ID,
		AccessToken:  accessToken,
		SessionToken: sessionToken,
		ExpiresIn:    s.AccessTTL,
		Scope:        scopes,
	}, nil
}

// Session resolves an opaque session token to its active session row.
func (s *AuthService) Session(ctx context.Context, sessionToken string) (domain.Session, error) {
	hash := cryptox.FingerprintToken(sessionToken)
	session, err := s.Store.Sessions().GetActiveSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, err
	}
	return session, nil
}

// RenewAccessToken issues a fresh access token against a still-active
// session, re-deriving scopes so role changes take effect on renewal.
func (s *AuthService) RenewAccessToken(ctx context.Context, sessionToken string) (*LoginResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now()

	session, err := s.Session(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	identity, err := s.Store.Identities().GetIdentityByID(ctx, session.IdentityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	scopes, err := s.scopesFor(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.Signer.Sign(jwtx.Claims{
		Subject:   identity.ID,
		Email:     identity.Email,
		SessionID: session.ID,
		Scopes:    scopes,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.AccessTTL),
	})
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return nil, err
	}

	return &LoginResult{
		IdentityID:   identity.ID,
		AccessToken:  accessToken,
		SessionToken: sessionToken,
		ExpiresIn:    s.AccessTTL,
		Scope:        scopes,
	}, nil
}

// SignOut revokes the session behind an opaque token. Revoking an already
// revoked or unknown token is not an error.
func (s *AuthService) SignOut(ctx context.Context, sessionToken string) error {
	log := slogx.FromContext(ctx)

	session, err := s.Session(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if err := s.Store.Sessions().RevokeSession(ctx, session.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		log.Error("failed to revoke session", slog.Any("error", err))
		return err
	}

	log.Info("signed out", slog.String("session_id", session.ID))
	return nil
}

// RequestPasswordReset issues a time-boxed single-use reset token and
// emails it. Unknown emails return nil so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	email, err := normalizeEmail(email)
	if err != nil {
		return nil
	}

	identity, err := s.Store.Identities().GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		log.Error("failed to fetch identity", slog.Any("error", err))
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}

	reset := domain.PasswordReset{
		ID:         idx.New().String(),
		IdentityID: identity.ID,
		TokenHash:  cryptox.FingerprintToken(token),
		ExpiresAt:  time.Now().Add(s.ResetTTL),
	}
	if err := s.Store.PasswordResets().CreatePasswordReset(ctx, reset); err != nil {
		log.Error("failed to persist password reset", slog.Any("error", err))
		return err
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendPasswordReset(ctx, email, token, reset.ExpiresAt); err != nil {
			log.Warn("reset email delivery failed", slog.Any("error", err))
		}
	}

	log.Info("password reset issued",
		slog.String("identity_id", identity.ID),
		slog.String("reset_id", reset.ID),
	)
	return nil
}

// CompletePasswordReset consumes a reset token, installs the new password,
// and revokes every open session for the identity in one transaction.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	if len(newPassword) < MinTempPasswordLength {
		return ErrPasswordTooShort
	}

	reset, err := s.Store.PasswordResets().GetActivePasswordResetByTokenHash(
		ctx, cryptox.FingerprintToken(token),
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset with invalid or expired token")
			return ErrResetNotFound
		}
		log.Error("failed to fetch password reset", slog.Any("error", err))
		return err
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.PasswordResets().MarkPasswordResetUsed(ctx, reset.ID); err != nil {
			return err
		}
		if err := tx.Identities().UpdatePasswordHash(ctx, reset.IdentityID, newHash); err != nil {
			return err
		}
		return tx.Sessions().RevokeAllIdentitySessions(ctx, reset.IdentityID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race with another use of the same token.
			return ErrResetNotFound
		}
		log.Error("failed to complete password reset",
			slog.String("reset_id", reset.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset completed",
		slog.String("identity_id", reset.IdentityID),
		slog.String("reset_id", reset.ID),
	)
	return nil
}

// scopesFor derives token scopes from the identity's agent profile.
// No profile yet means onboarding: profile scopes only. A deactivated
// profile refuses the sign-in outright.
func (s *AuthService) scopesFor(ctx context.Context, identityID string) ([]string, error) {
	agent, err := s.Store.Agents().GetAgentByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{ScopeProfileRead, ScopeProfileWrite}, nil
		}
		return nil, err
	}
	if !agent.Active {
		return nil, ErrAccountDisabled
	}

	scopes := []string{ScopeProfileRead, ScopeProfileWrite, ScopePropertiesWrite}
	if agent.Manager {
		scopes = append(scopes, ScopeAgentsManage, ScopeInvitesIssue)
	}
	return scopes, nil
}
