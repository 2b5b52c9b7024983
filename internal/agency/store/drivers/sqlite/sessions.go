package sqlite

import (
	"context"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type sessionsRepo struct {
	q querier
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (id, identity_id, token_hash, expires_at,
			revoked, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)`,
		s.ID, s.IdentityID, s.TokenHash, s.ExpiresAt.UTC(), now, now,
	)
	return err
}

func (r *sessionsRepo) GetActiveSessionByTokenHash(
	ctx context.Context,
	hash string,
) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, identity_id, token_hash, expires_at, revoked, created_at, updated_at
		FROM sessions
		WHERE token_hash = ? AND revoked = 0 AND expires_at > ?`,
		hash, time.Now().UTC())

	var s domain.Session
	err := row.Scan(
		&s.ID, &s.IdentityID, &s.TokenHash, &s.ExpiresAt,
		&s.Revoked, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, sessionID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), sessionID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sessionsRepo) RevokeAllIdentitySessions(ctx context.Context, identityID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE identity_id = ? AND revoked = 0`,
		time.Now().UTC(), identityID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	return err
}
