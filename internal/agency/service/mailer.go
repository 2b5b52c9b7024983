package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/harborview/doorstep/pkg/slogx"
)

// Mailer delivers out-of-band notifications. The invite code travels by
// mail as a convenience; the issuing manager also sees it directly.
type Mailer interface {
	SendInvite(ctx context.Context, email, code string, expiresAt time.Time) error
	SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) error
}

// LogMailer writes outgoing mail to the log instead of sending it. Used in
// development and tests where no SMTP relay exists.
type LogMailer struct{}

func (LogMailer) SendInvite(ctx context.Context, email, code string, expiresAt time.Time) error {
	slogx.FromContext(ctx).Info("mail: agent invite",
		slog.String("to", email),
		slog.String("code", code),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}

func (LogMailer) SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) error {
	slogx.FromContext(ctx).Info("mail: password reset",
		slog.String("to", email),
		slog.String("token", token),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
