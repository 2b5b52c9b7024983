package sqlite

import (
	"context"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type locationsRepo struct {
	q querier
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO locations (id, name, region, num_properties, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Region, l.NumProperties, now, now,
	)
	return err
}

func (r *locationsRepo) GetLocationByID(ctx context.Context, id string) (domain.Location, error) {
	var l domain.Location
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, region, num_properties, created_at, updated_at
		FROM locations WHERE id = ?`, id).Scan(
		&l.ID, &l.Name, &l.Region, &l.NumProperties, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return l, nil
}

func (r *locationsRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, region, num_properties, created_at, updated_at
		FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Region, &l.NumProperties, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// AddNumProperties is a single-statement increment so concurrent listing
// mutations never lose updates.
func (r *locationsRepo) AddNumProperties(ctx context.Context, locationID string, delta int64) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE locations
		SET num_properties = MAX(num_properties + ?, 0), updated_at = ?
		WHERE id = ?`,
		delta, time.Now().UTC(), locationID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
