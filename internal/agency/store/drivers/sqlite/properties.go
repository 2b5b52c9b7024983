package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
)

type propertiesRepo struct {
	q querier
}

const propertyColumns = `id, agent_id, location_id, title, description,
	price_cents, bedrooms, bathrooms, sold, image_paths, created_at, updated_at`

func scanProperty(row interface{ Scan(dest ...any) error }) (domain.Property, error) {
	var p domain.Property
	var images string

	err := row.Scan(
		&p.ID, &p.AgentID, &p.LocationID, &p.Title, &p.Description,
		&p.PriceCents, &p.Bedrooms, &p.Bathrooms, &p.Sold, &images,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}

	p.ImagePaths = splitPaths(images)
	return p, nil
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO properties (id, agent_id, location_id, title, description,
			price_cents, bedrooms, bathrooms, sold, image_paths, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AgentID, p.LocationID, p.Title, p.Description,
		p.PriceCents, p.Bedrooms, p.Bathrooms, p.Sold, joinPaths(p.ImagePaths),
		now, now,
	)
	return err
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)

	p, err := scanProperty(row)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return p, nil
}

// ListProperties builds the WHERE clause from the filter's set fields only,
// so browsing, per-agent, and per-location views share one query path.
func (r *propertiesRepo) ListProperties(
	ctx context.Context,
	f store.PropertyFilter,
) ([]domain.Property, error) {
	var conditions []string
	var args []any

	if f.AgentID != "" {
		conditions = append(conditions, "agent_id = ?")
		args = append(args, f.AgentID)
	}
	if f.LocationID != "" {
		conditions = append(conditions, "location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.Sold != nil {
		conditions = append(conditions, "sold = ?")
		args = append(args, *f.Sold)
	}
	if f.MinPrice > 0 {
		conditions = append(conditions, "price_cents >= ?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		conditions = append(conditions, "price_cents <= ?")
		args = append(args, f.MaxPrice)
	}
	if f.Bedrooms > 0 {
		conditions = append(conditions, "bedrooms >= ?")
		args = append(args, f.Bedrooms)
	}

	query := `SELECT ` + propertyColumns + ` FROM properties`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *propertiesRepo) UpdateProperty(ctx context.Context, p domain.Property) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE properties
		SET title = ?, description = ?, price_cents = ?, bedrooms = ?,
			bathrooms = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, p.PriceCents, p.Bedrooms, p.Bathrooms,
		time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *propertiesRepo) DeleteProperty(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// MarkPropertySold is a conditional update so two racing calls cannot both
// observe the transition.
func (r *propertiesRepo) MarkPropertySold(ctx context.Context, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE properties SET sold = 1, updated_at = ? WHERE id = ? AND sold = 0`,
		time.Now().UTC(), id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *propertiesRepo) SetImagePaths(ctx context.Context, id string, paths []string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE properties SET image_paths = ?, updated_at = ? WHERE id = ?`,
		joinPaths(paths), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
