package handlers

import (
	"net/http"

	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

// BackupFolder archives the named folder into the backup directory.
func BackupFolder(c *gin.Context) {
	folder := c.PostForm("directory")
	if folder == "" {
		utils.Error(c, http.StatusBadRequest, "no directory specified")
		return
	}

	filename, err := getServices().Backup.Backup(c.Request.Context(), folder)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"status": "success", "filename": filename})
}

// RestoreBackup unpacks a previously created archive into the image root.
func RestoreBackup(c *gin.Context) {
	backupFile := c.PostForm("backup_file")
	if backupFile == "" {
		utils.Error(c, http.StatusBadRequest, "no backup file specified")
		return
	}

	if err := getServices().Backup.Restore(c.Request.Context(), backupFile); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"status": "success"})
}

// ListBackups returns the archive filenames available for restore.
func ListBackups(c *gin.Context) {
	names, err := getServices().Backup.ListBackups()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, names)
}
