package handlers

import (
	"net/http"

	"github.com/DaytimeLobster/gogrow/services"
	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

type CreateJournalRequest struct {
	EntryTitle   string `json:"entry_title" binding:"required"`
	EntryContent string `json:"entry_content" binding:"required"`
	LinkedItemID string `json:"linked_item_id"`
	IsFavorite   string `json:"is_favorite"`
}

type UpdateJournalRequest struct {
	ID           string  `json:"id"`
	EntryTitle   *string `json:"entry_title" binding:"required"`
	EntryContent *string `json:"entry_content" binding:"required"`
	LinkedItemID *string `json:"linked_item_id" binding:"required"`
	IsFavorite   *string `json:"is_favorite" binding:"required"`
}

func ListJournals(c *gin.Context) {
	folder := c.Param("folder")
	entries, err := getServices().Journals.ListJournals(c.Request.Context(), folder)
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, entries)
}

func GetJournal(c *gin.Context) {
	folder := c.Param("folder")
	entry, err := getServices().Journals.GetJournal(c.Request.Context(), folder, c.Param("id"))
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, entry)
}

func CreateJournal(c *gin.Context) {
	var req CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := getServices().Journals.CreateJournal(c.Request.Context(), c.Param("folder"), services.JournalInput{
		EntryTitle:   req.EntryTitle,
		EntryContent: req.EntryContent,
		LinkedItemID: req.LinkedItemID,
		IsFavorite:   req.IsFavorite,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"journal_id": id})
}

// UpdateJournalEntry handles PUT /journals/:folder/:id, where the id comes
// from the path.
func UpdateJournalEntry(c *gin.Context) {
	var req UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Journals.UpdateJournal(c.Request.Context(), c.Param("folder"), services.JournalUpdate{
		ID:           c.Param("id"),
		EntryTitle:   *req.EntryTitle,
		EntryContent: *req.EntryContent,
		LinkedItemID: *req.LinkedItemID,
		IsFavorite:   *req.IsFavorite,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}

// UpdateJournal handles POST /update_journal, where the id rides in the body
// and the folder comes from the session context.
func UpdateJournal(c *gin.Context) {
	var req UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Journals.UpdateJournal(c.Request.Context(), activeFolder(c), services.JournalUpdate{
		ID:           req.ID,
		EntryTitle:   *req.EntryTitle,
		EntryContent: *req.EntryContent,
		LinkedItemID: *req.LinkedItemID,
		IsFavorite:   *req.IsFavorite,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}

func DeleteJournal(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Journals.DeleteJournal(c.Request.Context(), activeFolder(c), req.ID)
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}
