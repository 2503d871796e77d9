package store

import (
	"context"
	"fmt"

	"github.com/DaytimeLobster/gogrow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Markers struct {
	engine *Engine
}

func NewMarkers(engine *Engine) Markers {
	return Markers{engine: engine}
}

func (s Markers) List(ctx context.Context, storePath string) ([]models.Marker, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.Marker{})
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var out []models.Marker
	if err := db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}
	return out, nil
}

func (s Markers) Get(ctx context.Context, storePath string, id string) (models.Marker, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.Marker{})
	if err != nil {
		return models.Marker{}, err
	}
	defer closeFn()

	var m models.Marker
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return models.Marker{}, err
	}
	return m, nil
}

// Insert persists the marker under a fresh UUID and returns it.
func (s Markers) Insert(ctx context.Context, storePath string, m models.Marker) (string, error) {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Marker{})
	if err != nil {
		return "", err
	}
	defer closeFn()

	m.ID = uuid.NewString()
	if err := db.Create(&m).Error; err != nil {
		return "", fmt.Errorf("insert marker: %w", err)
	}
	return m.ID, nil
}

// Update replaces the mutable fields of the marker with the given id. The id
// and coordinates are immutable. Returns gorm.ErrRecordNotFound when no
// marker has that id.
func (s Markers) Update(ctx context.Context, storePath string, m models.Marker) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Marker{})
	if err != nil {
		return err
	}
	defer closeFn()

	res := db.Model(&models.Marker{}).
		Where("id = ?", m.ID).
		Select("info", "iconType", "iconColor", "markerNotes").
		Updates(map[string]any{
			"info":        m.Info,
			"iconType":    m.IconType,
			"iconColor":   m.IconColor,
			"markerNotes": m.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("update marker: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the marker. Deleting an id that does not exist is not an
// error.
func (s Markers) Delete(ctx context.Context, storePath string, id string) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Marker{})
	if err != nil {
		return err
	}
	defer closeFn()

	if err := db.Delete(&models.Marker{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete marker: %w", err)
	}
	return nil
}
