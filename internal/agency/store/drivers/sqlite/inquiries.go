package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
)

type inquiriesRepo struct {
	q querier
}

func scanInquiry(row interface{ Scan(dest ...any) error }) (domain.Inquiry, error) {
	var inq domain.Inquiry
	var clientRef sql.NullString

	err := row.Scan(
		&inq.ID, &inq.PropertyID, &inq.Name, &inq.Email, &inq.Phone,
		&inq.Message, &clientRef, &inq.CreatedAt,
	)
	if err != nil {
		return domain.Inquiry{}, err
	}

	inq.ClientRef = mapNullString(clientRef)
	return inq, nil
}

func (r *inquiriesRepo) CreateInquiry(ctx context.Context, inq domain.Inquiry) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO inquiries (id, property_id, name, email, phone_no, message,
			client_ref, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.PropertyID, inq.Name, inq.Email, inq.Phone, inq.Message,
		mapStringNull(inq.ClientRef), time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *inquiriesRepo) GetInquiryByClientRef(
	ctx context.Context,
	clientRef string,
) (domain.Inquiry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, property_id, name, email, phone_no, message, client_ref, created_at
		FROM inquiries WHERE client_ref = ?`, clientRef)

	inq, err := scanInquiry(row)
	if err != nil {
		return domain.Inquiry{}, mapNotFound(err)
	}
	return inq, nil
}

func (r *inquiriesRepo) ListInquiriesForAgent(
	ctx context.Context,
	agentID string,
) ([]domain.Inquiry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT i.id, i.property_id, i.name, i.email, i.phone_no, i.message,
			i.client_ref, i.created_at
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		WHERE p.agent_id = ?
		ORDER BY i.created_at DESC`, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
