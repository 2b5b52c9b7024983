package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/cryptox"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/harborview/doorstep/pkg/slogx"
)

const (
	// InviteCodeDigits is the length of the numeric invite code.
	InviteCodeDigits = 6

	// MinTempPasswordLength matches the credential form's local validation.
	MinTempPasswordLength = 6
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("temporary password too short")
	ErrDuplicateEmail  = errors.New("email already belongs to an agent")
	ErrCodeNotFound    = errors.New("no matching invite")
	ErrInviteExpired   = errors.New("invite has expired")
	ErrSignupFailed    = errors.New("account creation failed")
	ErrLoginFailed     = errors.New("sign-in after signup failed")
)

// IssuedInvite is what the issuing manager sees: the code to share
// out-of-band and when it stops working.
type IssuedInvite struct {
	Code      string
	ExpiresAt time.Time
}

type InviteService struct {
	Store     store.Store
	Auth      *AuthService
	Mailer    Mailer
	InviteTTL time.Duration
}

// IssueInvite mints a pending invite for a prospective agent. The manager
// supplies the email and a temporary password to share alongside the
// returned code; redemption must present the exact triple.
func (s *InviteService) IssueInvite(
	ctx context.Context,
	email string,
	tempPassword string,
	createdBy string,
) (IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalize and validate inputs.
	email, err := normalizeEmail(email)
	if err != nil {
		log.Warn("invite issuance with malformed email")
		return IssuedInvite{}, ErrInvalidEmail
	}
	if len(tempPassword) < MinTempPasswordLength {
		return IssuedInvite{}, ErrInvalidPassword
	}

	// 2. Reject emails that already belong to an agent or identity.
	if _, err := s.Store.Agents().GetAgentByEmail(ctx, email); err == nil {
		log.Warn("invite issuance for registered agent email")
		return IssuedInvite{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check agent email", slog.Any("error", err))
		return IssuedInvite{}, err
	}
	if _, err := s.Store.Identities().GetIdentityByEmail(ctx, email); err == nil {
		log.Warn("invite issuance for registered identity email")
		return IssuedInvite{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check identity email", slog.Any("error", err))
		return IssuedInvite{}, err
	}

	// 3. Generate the 6-digit code. Codes are not globally unique; the
	// (email, code) pair plus the temp password disambiguate at redemption.
	code, err := cryptox.GenerateNumericCode(InviteCodeDigits)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return IssuedInvite{}, err
	}

	invite := domain.Invite{
		ID:               idx.New().String(),
		Email:            email,
		TempPasswordHash: cryptox.FingerprintToken(tempPassword),
		Code:             code,
		CreatedBy:        createdBy,
		ExpiresAt:        time.Now().Add(s.InviteTTL),
	}

	// 4. Replace any pending invites for the email so a re-invite
	// supersedes rather than stacks. Both writes commit together.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().DeletePendingInvitesByEmail(ctx, email); err != nil {
			return err
		}
		return tx.Invites().CreateInvite(ctx, invite)
	})
	if err != nil {
		log.Error("failed to persist invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return IssuedInvite{}, err
	}

	// 5. Notify out-of-band. Delivery failure does not void the invite;
	// the issuing manager still sees the code and can share it directly.
	if s.Mailer != nil {
		if err := s.Mailer.SendInvite(ctx, email, code, invite.ExpiresAt); err != nil {
			log.Warn("invite email delivery failed", slog.Any("error", err))
		}
	}

	log.Info("invite issued",
		slog.String("invite_id", invite.ID),
		slog.String("created_by", createdBy),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return IssuedInvite{Code: code, ExpiresAt: invite.ExpiresAt}, nil
}

// RedeemInvite exchanges the (email, tempPassword, code) triple for a fresh
// identity plus an authenticated session. The invite is marked used in the
// same transaction that creates the identity, so a double submit cannot
// redeem twice.
func (s *InviteService) RedeemInvite(
	ctx context.Context,
	email string,
	tempPassword string,
	code string,
) (*LoginResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}
	code = strings.TrimSpace(code)
	if tempPassword == "" || code == "" {
		return nil, ErrCodeNotFound
	}

	// 2. Look up the pending invite by (email, code) and compare the
	// temp password fingerprint. A mismatch reads the same as no match so
	// the response does not reveal which part was wrong.
	invite, err := s.Store.Invites().GetInviteByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite redemption with no matching invite")
			return nil, ErrCodeNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return nil, err
	}
	if invite.TempPasswordHash != cryptox.FingerprintToken(tempPassword) {
		log.Warn("invite redemption with wrong temporary password",
			slog.String("invite_id", invite.ID),
		)
		return nil, ErrCodeNotFound
	}

	// 3. Enforce expiry server-side. The issuing client shows a countdown
	// but the stored expires_at is authoritative.
	if time.Now().After(invite.ExpiresAt) {
		log.Warn("invite redemption after expiry",
			slog.String("invite_id", invite.ID),
			slog.Time("expires_at", invite.ExpiresAt),
		)
		return nil, ErrInviteExpired
	}

	// 4. Create the identity and consume the invite atomically.
	passwordHash, err := cryptox.HashPassword(tempPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return nil, err
	}

	identity := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Identities().CreateIdentity(ctx, identity); err != nil {
			return err
		}
		return tx.Invites().MarkInviteUsed(ctx, invite.ID, identity.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("invite redemption raced an existing identity",
				slog.String("invite_id", invite.ID),
			)
			return nil, ErrSignupFailed
		}
		log.Error("failed to create identity",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return nil, ErrSignupFailed
	}

	// 5. Sign in with the same credentials so the caller lands in an
	// authenticated session immediately.
	result, err := s.Auth.SignInWithPassword(ctx, email, tempPassword)
	if err != nil {
		// The identity exists but has no session or profile yet. The
		// agent can recover by signing in normally.
		log.Error("post-redemption sign-in failed",
			slog.String("identity_id", identity.ID),
			slog.Any("error", err),
		)
		return nil, ErrLoginFailed
	}

	log.Info("invite redeemed",
		slog.String("invite_id", invite.ID),
		slog.String("identity_id", identity.ID),
	)

	return result, nil
}

// normalizeEmail lowercases, trims, and syntax-checks an email address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
