package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type invitesRepo struct {
	q querier
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO agent_invites (id, email, temp_password_hash, code,
			created_by, expires_at, used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		inv.ID, inv.Email, inv.TempPasswordHash, inv.Code,
		inv.CreatedBy, inv.ExpiresAt.UTC(), now, now,
	)
	return err
}

func (r *invitesRepo) GetInviteByEmailAndCode(
	ctx context.Context,
	email, code string,
) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, email, temp_password_hash, code, created_by, expires_at,
			used, used_by, created_at, updated_at
		FROM agent_invites
		WHERE email = ? AND code = ? AND used = 0
		ORDER BY created_at DESC
		LIMIT 1`,
		email, code)

	var inv domain.Invite
	var usedBy sql.NullString
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.TempPasswordHash, &inv.Code, &inv.CreatedBy,
		&inv.ExpiresAt, &inv.Used, &usedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}

	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}

func (r *invitesRepo) DeletePendingInvitesByEmail(ctx context.Context, email string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM agent_invites WHERE email = ? AND used = 0`, email)
	return err
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, inviteID, usedByID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE agent_invites SET used = 1, used_by = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(usedByID), time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM agent_invites WHERE expires_at < ?`, time.Now().UTC())
	return err
}
