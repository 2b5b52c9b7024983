package sqlite

import (
	"context"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type identitiesRepo struct {
	q querier
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, ident domain.Identity) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO identities (id, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		ident.ID, ident.Email, ident.PasswordHash, now, now,
	)
	return mapConstraint(err)
}

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	return r.getIdentity(ctx,
		`SELECT id, email, password_hash, created_at, updated_at
		 FROM identities WHERE id = ?`, id)
}

func (r *identitiesRepo) GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.getIdentity(ctx,
		`SELECT id, email, password_hash, created_at, updated_at
		 FROM identities WHERE email = ?`, email)
}

func (r *identitiesRepo) getIdentity(ctx context.Context, query, arg string) (domain.Identity, error) {
	var ident domain.Identity
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&ident.ID, &ident.Email, &ident.PasswordHash,
		&ident.CreatedAt, &ident.UpdatedAt,
	)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return ident, nil
}

func (r *identitiesRepo) UpdatePasswordHash(ctx context.Context, identityID, newHash string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE identities SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), identityID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
