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

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidLocation  = errors.New("invalid location fields")
	ErrLocationInUse    = errors.New("location still has properties")
)

type LocationService struct {
	Store store.Store
}

// CreateLocation adds a browsable area.
func (s *LocationService) CreateLocation(
	ctx context.Context,
	name string,
	region string,
) (domain.Location, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	region = strings.TrimSpace(region)
	if name == "" {
		return domain.Location{}, ErrInvalidLocation
	}

	loc := domain.Location{
		ID:     idx.New().String(),
		Name:   name,
		Region: region,
	}
	if err := s.Store.Locations().CreateLocation(ctx, loc); err != nil {
		log.Error("failed to create location", slog.Any("error", err))
		return domain.Location{}, err
	}

	log.Info("location created",
		slog.String("location_id", loc.ID),
		slog.String("name", name),
	)
	return s.GetLocation(ctx, loc.ID)
}

// GetLocation returns one location with its live property count.
func (s *LocationService) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	loc, err := s.Store.Locations().GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, err
	}
	return loc, nil
}

// ListLocations returns all browsable areas.
func (s *LocationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.Store.Locations().ListLocations(ctx)
}

// DeleteLocation removes an area that no longer holds properties.
func (s *LocationService) DeleteLocation(ctx context.Context, id string) error {
	loc, err := s.GetLocation(ctx, id)
	if err != nil {
		return err
	}
	if loc.NumProperties > 0 {
		return ErrLocationInUse
	}
	if err := s.Store.Locations().DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	return nil
}
