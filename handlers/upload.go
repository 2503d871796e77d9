package handlers

import (
	"net/http"

	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

// UploadBaseImage receives a map image, creates its folder and store, and
// makes that folder the active session folder.
func UploadBaseImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "no image file provided")
		return
	}

	result, serr := getServices().Upload.SaveBaseImage(c.Request.Context(), fh)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	setActiveFolder(c, result.Folder)
	utils.Success(c, result)
}

// UploadJournalImage stores a picture attached to a journal entry.
func UploadJournalImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "no image file provided")
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = activeFolder(c)
	}

	url, serr := getServices().Upload.SaveJournalImage(c.Request.Context(), folder, fh)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	utils.Success(c, gin.H{"status": "OK", "data": url})
}

// GetImageURL returns the serving path of the folder's newest base image as
// plain text.
func GetImageURL(c *gin.Context) {
	url, err := getServices().Upload.LatestImageURL(c.Param("folder"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.String(http.StatusOK, url)
}
