package models

// JournalEntry is a free-form note, optionally linked to a marker or line.
// LinkedItemID is not enforced against the other tables; a dangling reference
// is tolerated. EntryDate and ID are immutable after creation.
//
// IsFavorite keeps the legacy "yes"/"no" text encoding.
type JournalEntry struct {
	ID           string `gorm:"column:id;primaryKey;type:text" json:"journalId"`
	EntryDate    string `gorm:"column:entry_date;type:text;not null" json:"entry_date"`
	LinkedItemID string `gorm:"column:linked_item_id;type:text" json:"linked_item_id"`
	EntryTitle   string `gorm:"column:entry_title;type:text;not null" json:"entry_title"`
	EntryContent string `gorm:"column:entry_content;type:text;not null" json:"entry_content"`
	IsFavorite   string `gorm:"column:is_favorite;type:text;not null;default:no" json:"is_favorite"`
}

func (JournalEntry) TableName() string {
	return "journals"
}
