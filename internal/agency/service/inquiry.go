package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/harborview/doorstep/pkg/slogx"
)

var ErrInvalidInquiry = errors.New("invalid inquiry fields")

type InquiryService struct {
	Store store.Store
}

// SubmitInquiry records a buyer message about a property. When the caller
// supplies a client reference, a repeated submit with the same reference
// returns the already-stored inquiry instead of inserting a duplicate.
func (s *InquiryService) SubmitInquiry(
	ctx context.Context,
	inq domain.Inquiry,
) (domain.Inquiry, error) {
	log := slogx.FromContext(ctx)

	inq.Name = strings.TrimSpace(inq.Name)
	inq.Message = strings.TrimSpace(inq.Message)
	inq.ClientRef = strings.TrimSpace(inq.ClientRef)
	if inq.Name == "" || inq.Message == "" {
		return domain.Inquiry{}, ErrInvalidInquiry
	}
	email, err := normalizeEmail(inq.Email)
	if err != nil {
		return domain.Inquiry{}, ErrInvalidInquiry
	}
	inq.Email = email

	if _, err := s.Store.Properties().GetPropertyByID(ctx, inq.PropertyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Inquiry{}, ErrPropertyNotFound
		}
		return domain.Inquiry{}, err
	}

	if inq.ClientRef != "" {
		existing, err := s.Store.Inquiries().GetInquiryByClientRef(ctx, inq.ClientRef)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Inquiry{}, err
		}
	}

	inq.ID = idx.New().String()
	if err := s.Store.Inquiries().CreateInquiry(ctx, inq); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) && inq.ClientRef != "" {
			// Lost the race with an identical submit; hand back the winner.
			return s.Store.Inquiries().GetInquiryByClientRef(ctx, inq.ClientRef)
		}
		log.Error("failed to create inquiry",
			slog.String("property_id", inq.PropertyID),
			slog.Any("error", err),
		)
		return domain.Inquiry{}, err
	}

	log.Info("inquiry submitted",
		slog.String("inquiry_id", inq.ID),
		slog.String("property_id", inq.PropertyID),
	)
	return inq, nil
}

// ListInquiriesForAgent returns inquiries against the agent's listings.
func (s *InquiryService) ListInquiriesForAgent(ctx context.Context, agentID string) ([]domain.Inquiry, error) {
	return s.Store.Inquiries().ListInquiriesForAgent(ctx, agentID)
}
