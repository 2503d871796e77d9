package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/DaytimeLobster/gogrow/services"
	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	utils.Success(c, gin.H{"status": "healthy"})
}

// GetFolders lists the map folders available under the image root.
func GetFolders(c *gin.Context) {
	folders, err := getServices().Resolver.ListFolders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, folders)
}

// SetImageFolder switches the session's active folder after validating it.
func SetImageFolder(c *gin.Context) {
	folder := c.Query("image_folder")
	if folder == "" {
		utils.OK(c)
		return
	}

	if _, err := getServices().Resolver.ResolveExistingFolder(folder); err != nil {
		respondServiceError(c, err)
		return
	}

	setActiveFolder(c, folder)
	utils.OK(c)
}

func IconFilenames(c *gin.Context) {
	names, err := getServices().Assets.IconFilenames()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, names)
}

func Textures(c *gin.Context) {
	names, err := getServices().Assets.TextureFilenames()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, names)
}

// ServeImage serves uploaded images from the image root. Store files are
// never served, and the response carries no-cache headers so a re-uploaded
// base image replaces the old one immediately in the browser.
func ServeImage(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	if rel == "" || strings.EqualFold(filepath.Ext(rel), ".db") {
		utils.Error(c, http.StatusNotFound, "file not found")
		return
	}

	root := getServices().Resolver.ImageRoot()
	if !services.IsSafePath(root, rel) {
		utils.Error(c, http.StatusNotFound, "file not found")
		return
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.File(filepath.Join(root, rel))
}

// ServeIcon serves marker icons from the icon directory.
func ServeIcon(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	dir := getServices().Config.Storage.IconDir
	if rel == "" || !services.IsSafePath(dir, rel) {
		utils.Error(c, http.StatusNotFound, "file not found")
		return
	}

	c.File(filepath.Join(dir, rel))
}

// CustomTheme emits the user's theme variables as a CSS stylesheet.
func CustomTheme(c *gin.Context) {
	css, ok := getServices().Settings.ThemeCSS()
	if !ok {
		c.Data(http.StatusNotFound, "text/css; charset=utf-8", []byte("/* No custom theme defined */"))
		return
	}

	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// GetSetting returns a single settings value, or JSON null when unset.
func GetSetting(c *gin.Context) {
	section := c.Query("section")
	key := c.Query("key")
	if section == "" || key == "" {
		utils.Error(c, http.StatusBadRequest, "section and key are required")
		return
	}

	value, ok := getServices().Settings.Get(section, key)
	if !ok {
		utils.Success(c, gin.H{"value": nil})
		return
	}

	utils.Success(c, gin.H{"value": value})
}

// UpdateSetting persists a single settings value.
func UpdateSetting(c *gin.Context) {
	section := c.PostForm("section")
	key := c.PostForm("key")
	value := c.PostForm("value")
	if section == "" || key == "" {
		utils.Error(c, http.StatusBadRequest, "section and key are required")
		return
	}

	if err := getServices().Settings.Update(section, key, value); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"success": true})
}
