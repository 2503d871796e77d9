package services

import (
	"context"
	"errors"
	"time"

	"github.com/DaytimeLobster/gogrow/logger"
	"github.com/DaytimeLobster/gogrow/models"
	"github.com/DaytimeLobster/gogrow/store"

	"gorm.io/gorm"
)

// entryDateFormat matches the human-readable timestamps already present in
// stores written by earlier releases.
const entryDateFormat = "January 02, 2006 15:04"

type JournalInput struct {
	EntryTitle   string
	EntryContent string
	LinkedItemID string
	IsFavorite   string
}

type JournalUpdate struct {
	ID           string
	EntryTitle   string
	EntryContent string
	LinkedItemID string
	IsFavorite   string
}

type JournalService interface {
	ListJournals(ctx context.Context, folder string) ([]models.JournalEntry, error)
	GetJournal(ctx context.Context, folder string, id string) (models.JournalEntry, error)
	CreateJournal(ctx context.Context, folder string, in JournalInput) (string, error)
	UpdateJournal(ctx context.Context, folder string, in JournalUpdate) error
	DeleteJournal(ctx context.Context, folder string, id string) error
}

type journalService struct {
	resolver FolderResolver
	journals store.Journals
	now      func() time.Time
}

func NewJournalService(resolver FolderResolver, journals store.Journals) JournalService {
	return &journalService{resolver: resolver, journals: journals, now: time.Now}
}

func (s *journalService) ListJournals(ctx context.Context, folder string) ([]models.JournalEntry, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return nil, err
	}

	entries, err := s.journals.List(ctx, loc.StorePath)
	if err != nil {
		logger.Errorf("listing journals for %s: %v", folder, err)
		return []models.JournalEntry{}, nil
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, nil
}

func (s *journalService) GetJournal(ctx context.Context, folder string, id string) (models.JournalEntry, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return models.JournalEntry{}, err
	}

	j, err := s.journals.Get(ctx, loc.StorePath, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.JournalEntry{}, newNotFound("journal entry not found")
		}
		return models.JournalEntry{}, newStorageError("failed to read journal entry", err)
	}
	return j, nil
}

// CreateJournal assigns the server-side entry date; it is immutable
// afterwards.
func (s *journalService) CreateJournal(ctx context.Context, folder string, in JournalInput) (string, error) {
	loc, err := s.resolver.EnsureFolderDirectory(folder)
	if err != nil {
		return "", err
	}

	favorite := in.IsFavorite
	if favorite == "" {
		favorite = "no"
	}

	id, err := s.journals.Insert(ctx, loc.StorePath, models.JournalEntry{
		EntryDate:    s.now().Format(entryDateFormat),
		LinkedItemID: in.LinkedItemID,
		EntryTitle:   in.EntryTitle,
		EntryContent: in.EntryContent,
		IsFavorite:   favorite,
	})
	if err != nil {
		return "", newStorageError("failed to save journal entry", err)
	}
	return id, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, folder string, in JournalUpdate) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	err = s.journals.Update(ctx, loc.StorePath, models.JournalEntry{
		ID:           in.ID,
		EntryTitle:   in.EntryTitle,
		EntryContent: in.EntryContent,
		LinkedItemID: in.LinkedItemID,
		IsFavorite:   in.IsFavorite,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newNotFound("journal entry not found")
		}
		return newStorageError("failed to update journal entry", err)
	}
	return nil
}

func (s *journalService) DeleteJournal(ctx context.Context, folder string, id string) error {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return err
	}

	if err := s.journals.Delete(ctx, loc.StorePath, id); err != nil {
		return newStorageError("failed to delete journal entry", err)
	}
	return nil
}
