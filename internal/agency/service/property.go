package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/harborview/doorstep/internal/agency/blob"
	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/harborview/doorstep/pkg/slogx"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidProperty  = errors.New("invalid property fields")
	ErrNotPropertyOwner = errors.New("property belongs to a different agent")
)

type PropertyService struct {
	Store store.Store
	Blobs blob.Store
}

// CreateProperty lists a new property under the given agent and bumps the
// location's counter in the same transaction.
func (s *PropertyService) CreateProperty(
	ctx context.Context,
	agentID string,
	p domain.Property,
) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.PriceCents <= 0 || p.Bedrooms < 0 || p.Bathrooms < 0 {
		return domain.Property{}, ErrInvalidProperty
	}

	if _, err := s.Store.Locations().GetLocationByID(ctx, p.LocationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrLocationNotFound
		}
		return domain.Property{}, err
	}

	p.ID = idx.New().String()
	p.AgentID = agentID
	p.Sold = false
	p.ImagePaths = nil

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Properties().CreateProperty(ctx, p); err != nil {
			return err
		}
		return tx.Locations().AddNumProperties(ctx, p.LocationID, 1)
	})
	if err != nil {
		log.Error("failed to create property",
			slog.String("agent_id", agentID),
			slog.Any("error", err),
		)
		return domain.Property{}, err
	}

	log.Info("property created",
		slog.String("property_id", p.ID),
		slog.String("agent_id", agentID),
		slog.String("location_id", p.LocationID),
	)
	return s.GetProperty(ctx, p.ID)
}

// GetProperty returns a single listing.
func (s *PropertyService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	p, err := s.Store.Properties().GetPropertyByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	return p, nil
}

// SearchProperties applies the public browse filter.
func (s *PropertyService) SearchProperties(
	ctx context.Context,
	f store.PropertyFilter,
) ([]domain.Property, error) {
	return s.Store.Properties().ListProperties(ctx, f)
}

// UpdateProperty refreshes the mutable listing fields. Only the listing
// agent may edit their property.
func (s *PropertyService) UpdateProperty(
	ctx context.Context,
	agentID string,
	p domain.Property,
) (domain.Property, error) {
	existing, err := s.GetProperty(ctx, p.ID)
	if err != nil {
		return domain.Property{}, err
	}
	if existing.AgentID != agentID {
		return domain.Property{}, ErrNotPropertyOwner
	}

	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.PriceCents <= 0 || p.Bedrooms < 0 || p.Bathrooms < 0 {
		return domain.Property{}, ErrInvalidProperty
	}

	// Location and sold state do not change through update; moving a
	// listing or selling it go through their own operations.
	p.AgentID = existing.AgentID
	p.LocationID = existing.LocationID
	p.Sold = existing.Sold
	p.ImagePaths = existing.ImagePaths

	if err := s.Store.Properties().UpdateProperty(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	return s.GetProperty(ctx, p.ID)
}

// DeleteProperty removes a listing, decrements its location counter, and
// cleans up stored images.
func (s *PropertyService) DeleteProperty(ctx context.Context, agentID, propertyID string) error {
	log := slogx.FromContext(ctx)

	existing, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if existing.AgentID != agentID {
		return ErrNotPropertyOwner
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Properties().DeleteProperty(ctx, propertyID); err != nil {
			return err
		}
		return tx.Locations().AddNumProperties(ctx, existing.LocationID, -1)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPropertyNotFound
		}
		log.Error("failed to delete property",
			slog.String("property_id", propertyID),
			slog.Any("error", err),
		)
		return err
	}

	for _, p := range existing.ImagePaths {
		if err := s.Blobs.Remove(ctx, p); err != nil && !errors.Is(err, blob.ErrNotFound) {
			log.Warn("failed to remove property image",
				slog.String("path", p),
				slog.Any("error", err),
			)
		}
	}

	log.Info("property deleted", slog.String("property_id", propertyID))
	return nil
}

// MarkSold flips a listing to sold. The conditional store update reports
// whether this call made the transition, and only the winning call bumps
// the agent's sold counter, so a double submit counts once.
func (s *PropertyService) MarkSold(ctx context.Context, agentID, propertyID string) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	existing, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	if existing.AgentID != agentID {
		return domain.Property{}, ErrNotPropertyOwner
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		transitioned, err := tx.Properties().MarkPropertySold(ctx, propertyID)
		if err != nil {
			return err
		}
		if !transitioned {
			return nil
		}
		return tx.Agents().AddSoldProperties(ctx, existing.AgentID, 1)
	})
	if err != nil {
		log.Error("failed to mark property sold",
			slog.String("property_id", propertyID),
			slog.Any("error", err),
		)
		return domain.Property{}, err
	}

	log.Info("property sold",
		slog.String("property_id", propertyID),
		slog.String("agent_id", existing.AgentID),
	)
	return s.GetProperty(ctx, propertyID)
}

// AddImage stores a listing photo and appends its path.
func (s *PropertyService) AddImage(
	ctx context.Context,
	agentID string,
	propertyID string,
	filename string,
	r io.Reader,
) (string, error) {
	log := slogx.FromContext(ctx)

	existing, err := s.GetProperty(ctx, propertyID)
	if err != nil {
		return "", err
	}
	if existing.AgentID != agentID {
		return "", ErrNotPropertyOwner
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", ErrUnsupportedAvatarType
	}

	imagePath := fmt.Sprintf("properties/%s/%s%s", propertyID, idx.New().String(), ext)
	if err := s.Blobs.Upload(ctx, imagePath, r); err != nil {
		log.Error("failed to upload property image",
			slog.String("property_id", propertyID),
			slog.Any("error", err),
		)
		return "", err
	}

	paths := append(existing.ImagePaths, imagePath)
	if err := s.Store.Properties().SetImagePaths(ctx, propertyID, paths); err != nil {
		return "", err
	}
	return imagePath, nil
}

// OpenImage streams a stored listing photo or avatar.
func (s *PropertyService) OpenImage(ctx context.Context, blobPath string) (io.ReadCloser, error) {
	return s.Blobs.Open(ctx, blobPath)
}
