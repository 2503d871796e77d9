package store

import (
	"context"
	"fmt"

	"github.com/DaytimeLobster/gogrow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lines struct {
	engine *Engine
}

func NewLines(engine *Engine) Lines {
	return Lines{engine: engine}
}

func (s Lines) List(ctx context.Context, storePath string) ([]models.Line, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.Line{})
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var out []models.Line
	if err := db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	return out, nil
}

func (s Lines) Get(ctx context.Context, storePath string, id string) (models.Line, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.Line{})
	if err != nil {
		return models.Line{}, err
	}
	defer closeFn()

	var l models.Line
	if err := db.First(&l, "id = ?", id).Error; err != nil {
		return models.Line{}, err
	}
	return l, nil
}

func (s Lines) Insert(ctx context.Context, storePath string, l models.Line) (string, error) {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Line{})
	if err != nil {
		return "", err
	}
	defer closeFn()

	l.ID = uuid.NewString()
	if err := db.Create(&l).Error; err != nil {
		return "", fmt.Errorf("insert line: %w", err)
	}
	return l.ID, nil
}

// Update replaces the mutable fields (info, color, notes); the id and both
// endpoints are immutable.
func (s Lines) Update(ctx context.Context, storePath string, l models.Line) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Line{})
	if err != nil {
		return err
	}
	defer closeFn()

	res := db.Model(&models.Line{}).
		Where("id = ?", l.ID).
		Select("info", "color", "notes").
		Updates(map[string]any{
			"info":  l.Info,
			"color": l.Color,
			"notes": l.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("update line: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s Lines) Delete(ctx context.Context, storePath string, id string) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.Line{})
	if err != nil {
		return err
	}
	defer closeFn()

	if err := db.Delete(&models.Line{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete line: %w", err)
	}
	return nil
}
