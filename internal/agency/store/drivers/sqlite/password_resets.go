package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type passwordResetsRepo struct {
	q querier
}

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO password_resets (id, identity_id, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		pr.ID, pr.IdentityID, pr.TokenHash, pr.ExpiresAt.UTC(), time.Now().UTC(),
	)
	return err
}

func (r *passwordResetsRepo) GetActivePasswordResetByTokenHash(
	ctx context.Context,
	hash string,
) (domain.PasswordReset, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, identity_id, token_hash, expires_at, used_at, created_at
		FROM password_resets
		WHERE token_hash = ? AND used_at IS NULL AND expires_at > ?`,
		hash, time.Now().UTC())

	var pr domain.PasswordReset
	var usedAt sql.NullTime
	err := row.Scan(&pr.ID, &pr.IdentityID, &pr.TokenHash, &pr.ExpiresAt, &usedAt, &pr.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}

	pr.UsedAt = mapNullTimePtr(usedAt)
	return pr, nil
}

func (r *passwordResetsRepo) MarkPasswordResetUsed(ctx context.Context, resetID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE password_resets SET used_at = ? WHERE id = ? AND used_at IS NULL`,
		time.Now().UTC(), resetID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM password_resets WHERE expires_at < ?`, time.Now().UTC())
	return err
}
