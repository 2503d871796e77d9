package store

import (
	"context"
	"fmt"

	"github.com/DaytimeLobster/gogrow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Journals struct {
	engine *Engine
}

func NewJournals(engine *Engine) Journals {
	return Journals{engine: engine}
}

func (s Journals) List(ctx context.Context, storePath string) ([]models.JournalEntry, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.JournalEntry{})
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var out []models.JournalEntry
	if err := db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return out, nil
}

func (s Journals) Get(ctx context.Context, storePath string, id string) (models.JournalEntry, error) {
	db, closeFn, err := s.engine.open(ctx, storePath, &models.JournalEntry{})
	if err != nil {
		return models.JournalEntry{}, err
	}
	defer closeFn()

	var j models.JournalEntry
	if err := db.First(&j, "id = ?", id).Error; err != nil {
		return models.JournalEntry{}, err
	}
	return j, nil
}

// Insert persists the entry under a fresh UUID. EntryDate is expected to be
// set by the caller and is immutable afterwards.
func (s Journals) Insert(ctx context.Context, storePath string, j models.JournalEntry) (string, error) {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.JournalEntry{})
	if err != nil {
		return "", err
	}
	defer closeFn()

	j.ID = uuid.NewString()
	if err := db.Create(&j).Error; err != nil {
		return "", fmt.Errorf("insert journal entry: %w", err)
	}
	return j.ID, nil
}

// Update replaces the mutable fields (title, content, linked item,
// favorite flag); the id and entry date are immutable.
func (s Journals) Update(ctx context.Context, storePath string, j models.JournalEntry) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.JournalEntry{})
	if err != nil {
		return err
	}
	defer closeFn()

	res := db.Model(&models.JournalEntry{}).
		Where("id = ?", j.ID).
		Select("entry_title", "entry_content", "linked_item_id", "is_favorite").
		Updates(map[string]any{
			"entry_title":    j.EntryTitle,
			"entry_content":  j.EntryContent,
			"linked_item_id": j.LinkedItemID,
			"is_favorite":    j.IsFavorite,
		})
	if res.Error != nil {
		return fmt.Errorf("update journal entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s Journals) Delete(ctx context.Context, storePath string, id string) error {
	lock := s.engine.writeLock(storePath)
	lock.Lock()
	defer lock.Unlock()

	db, closeFn, err := s.engine.open(ctx, storePath, &models.JournalEntry{})
	if err != nil {
		return err
	}
	defer closeFn()

	if err := db.Delete(&models.JournalEntry{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}
