package services

import (
	"context"
	"errors"

	"github.com/DaytimeLobster/gogrow/logger"
	"github.com/DaytimeLobster/gogrow/models"
	"github.com/DaytimeLobster/gogrow/store"

	"gorm.io/gorm"
)

type MarkerInput struct {
	Lat       float64
	Lng       float64
	Info      string
	IconType  string
	IconColor string
	Notes     string
}

type MarkerUpdate struct {
	ID        string
	Info      string
	IconType  string
	IconColor string
	Notes     string
}

type MarkerService interface {
	ListMarkers(ctx context.Context, folder string) ([]models.Marker, error)
	GetMarker(ctx context.Context, folder string, id string) (models.Marker, error)
	CreateMarker(ctx context.Context, folder string, in MarkerInput) (string, error)
	UpdateMarker(ctx context.Context, folder string, in MarkerUpdate) error
	DeleteMarker(ctx context.Context, folder string, id string) error
}

type markerService struct {
	resolver FolderResolver
	markers  store.Markers
}

func NewMarkerService(resolver FolderResolver, markers store.Markers) MarkerService {
	return &markerService{resolver: resolver, markers: markers}
}

// ListMarkers degrades to an empty list on storage errors so a folder whose
// store is not yet initialized still renders an empty map.
func (s *markerService) ListMarkers(ctx context.Context, folder string) ([]models.Marker, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return nil, err
	}

	markers, err := s.markers.List(ctx, loc.StorePath)
	if err != nil {
		logger.Errorf("listing markers for %s: %v", folder, err)
		return []models.Marker{}, nil
	}
	if markers == nil {
		markers = []models.Marker{}
	}
	return markers, nil
}

func (s *markerService) GetMarker(ctx context.Context, folder string, id string) (models.Marker, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return models.Marker{}, err
	}

	m, err := s.markers.Get(ctx, loc.StorePath, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Marker{}, newNotFound("marker not found")
		}
		return models.Marker{}, newStorageError("failed to read marker", err)
	}
	return m, nil
}

func (s *markerService) CreateMarker(ctx context.Context, folder string, in MarkerInput) (string, error) {
	if err := validateLatitude(in.Lat); err != nil {
		return "", err
	}
	if err := validateLongitude(in.Lng); err != nil {
		return "", err
	}

	loc, err := s.resolver.EnsureFolderDirectory(folder)
	if err != nil {
		return "", err
	}

	id, err := s.markers.Insert(ctx, loc.StorePath, models.Marker{
		Lat:       in.Lat,
		Lng:       in.Lng,
		Info:      in.Info,
		IconType:  in.IconType,
		IconColor: in.IconColor,
		Notes:     in.Notes,
	})
	if err != nil {
		return "", newStorageError("failed to save marker", err)
	}
	return id, nil
}

func (s *markerService) UpdateMarker(ctx context.Context, folder string, in MarkerUpdate) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	err = s.markers.Update(ctx, loc.StorePath, models.Marker{
		ID:        in.ID,
		Info:      in.Info,
		IconType:  in.IconType,
		IconColor: in.IconColor,
		Notes:     in.Notes,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newNotFound("marker not found")
		}
		return newStorageError("failed to update marker", err)
	}
	return nil
}

func (s *markerService) DeleteMarker(ctx context.Context, folder string, id string) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	if err := s.markers.Delete(ctx, loc.StorePath, id); err != nil {
		return newStorageError("failed to delete marker", err)
	}
	return nil
}
