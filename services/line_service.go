package services

import (
	"context"
	"errors"

	"github.com/DaytimeLobster/gogrow/logger"
	"github.com/DaytimeLobster/gogrow/models"
	"github.com/DaytimeLobster/gogrow/store"

	"gorm.io/gorm"
)

type LineInput struct {
	StartLat float64
	StartLng float64
	EndLat   float64
	EndLng   float64
	Info     string
	Color    string
	Notes    string
}

type LineUpdate struct {
	ID    string
	Info  string
	Color string
	Notes string
}

type LineService interface {
	ListLines(ctx context.Context, folder string) ([]models.Line, error)
	GetLine(ctx context.Context, folder string, id string) (models.Line, error)
	CreateLine(ctx context.Context, folder string, in LineInput) (string, error)
	UpdateLine(ctx context.Context, folder string, in LineUpdate) error
	DeleteLine(ctx context.Context, folder string, id string) error
}

type lineService struct {
	resolver FolderResolver
	lines    store.Lines
}

func NewLineService(resolver FolderResolver, lines store.Lines) LineService {
	return &lineService{resolver: resolver, lines: lines}
}

func (s *lineService) ListLines(ctx context.Context, folder string) ([]models.Line, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return nil, err
	}

	lines, err := s.lines.List(ctx, loc.StorePath)
	if err != nil {
		logger.Errorf("listing lines for %s: %v", folder, err)
		return []models.Line{}, nil
	}
	if lines == nil {
		lines = []models.Line{}
	}
	return lines, nil
}

func (s *lineService) GetLine(ctx context.Context, folder string, id string) (models.Line, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return models.Line{}, err
	}

	l, err := s.lines.Get(ctx, loc.StorePath, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Line{}, newNotFound("line not found")
		}
		return models.Line{}, newStorageError("failed to read line", err)
	}
	return l, nil
}

// CreateLine validates all four coordinates before any store mutation; both
// endpoints follow the same latitude/longitude rules as markers.
func (s *lineService) CreateLine(ctx context.Context, folder string, in LineInput) (string, error) {
	if err := validateLatitude(in.StartLat); err != nil {
		return "", err
	}
	if err := validateLongitude(in.StartLng); err != nil {
		return "", err
	}
	if err := validateLatitude(in.EndLat); err != nil {
		return "", err
	}
	if err := validateLongitude(in.EndLng); err != nil {
		return "", err
	}

	loc, err := s.resolver.EnsureFolderDirectory(folder)
	if err != nil {
		return "", err
	}

	id, err := s.lines.Insert(ctx, loc.StorePath, models.Line{
		StartLat: in.StartLat,
		StartLng: in.StartLng,
		EndLat:   in.EndLat,
		EndLng:   in.EndLng,
		Info:     in.Info,
		Color:    in.Color,
		Notes:    in.Notes,
	})
	if err != nil {
		return "", newStorageError("failed to save line", err)
	}
	return id, nil
}

func (s *lineService) UpdateLine(ctx context.Context, folder string, in LineUpdate) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	err = s.lines.Update(ctx, loc.StorePath, models.Line{
		ID:    in.ID,
		Info:  in.Info,
		Color: in.Color,
		Notes: in.Notes,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newNotFound("line not found")
		}
		return newStorageError("failed to update line", err)
	}
	return nil
}

func (s *lineService) DeleteLine(ctx context.Context, folder string, id string) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	if err := s.lines.Delete(ctx, loc.StorePath, id); err != nil {
		return newStorageError("failed to delete line", err)
	}
	return nil
}
