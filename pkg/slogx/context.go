package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores a logger in the context for downstream handlers.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithIdentity tags every entry of the contextual logger with the
// authenticated identity. Called once after token verification so the
// service layer never has to thread the id into its log calls.
func WithIdentity(ctx context.Context, identityID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With("identity_id", identityID))
}

// FromContext returns the contextual logger, or the default logger if none
// has been attached.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}
