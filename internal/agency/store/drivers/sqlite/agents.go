package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type agentsRepo struct {
	q querier
}

const agentColumns = `id, name, email, phone_no, profile_pic_path, is_manager,
	is_active, sold_properties, created_at, deactivated_at, updated_at`

func scanAgent(row interface{ Scan(dest ...any) error }) (domain.Agent, error) {
	var a domain.Agent
	var avatar sql.NullString
	var deactivated sql.NullTime

	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &avatar, &a.Manager,
		&a.Active, &a.SoldProperties, &a.CreatedAt, &deactivated, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Agent{}, err
	}

	a.AvatarPath = mapNullString(avatar)
	a.DeactivatedAt = mapNullTimePtr(deactivated)
	return a, nil
}

func (r *agentsRepo) GetAgentByID(ctx context.Context, id string) (domain.Agent, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id = ?`, id)

	a, err := scanAgent(row)
	if err != nil {
		return domain.Agent{}, mapNotFound(err)
	}
	return a, nil
}

func (r *agentsRepo) GetAgentByEmail(ctx context.Context, email string) (domain.Agent, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE email = ?`, email)

	a, err := scanAgent(row)
	if err != nil {
		return domain.Agent{}, mapNotFound(err)
	}
	return a, nil
}

func (r *agentsRepo) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+agentColumns+` FROM agents ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (r *agentsRepo) UpsertProfile(ctx context.Context, a domain.Agent) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO agents (id, name, email, phone_no, profile_pic_path,
			is_manager, is_active, sold_properties, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			phone_no = excluded.phone_no,
			updated_at = excluded.updated_at`,
		a.ID, a.Name, a.Email, a.Phone, mapStringNull(a.AvatarPath),
		a.Manager, a.Active, a.SoldProperties, now, now,
	)
	return mapConstraint(err)
}

func (r *agentsRepo) SetManager(ctx context.Context, agentID string, manager bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE agents SET is_manager = ?, updated_at = ? WHERE id = ?`,
		manager, time.Now().UTC(), agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *agentsRepo) SetActive(
	ctx context.Context,
	agentID string,
	active bool,
	deactivatedAt *time.Time,
) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE agents SET is_active = ?, deactivated_at = ?, updated_at = ? WHERE id = ?`,
		active, mapTimeNull(deactivatedAt), time.Now().UTC(), agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *agentsRepo) SetAvatarPath(ctx context.Context, agentID string, path string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE agents SET profile_pic_path = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(path), time.Now().UTC(), agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *agentsRepo) AddSoldProperties(ctx context.Context, agentID string, delta int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE agents
		SET sold_properties = MAX(sold_properties + ?, 0), updated_at = ?
		WHERE id = ?`,
		delta, time.Now().UTC(), agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row update to ErrNotFound so services don't
// need a separate existence check.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
