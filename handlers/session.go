package handlers

import "github.com/gin-gonic/gin"

// The active folder rides in a cookie so stateless clients keep their map
// across requests; endpoints that carry no folder in the path fall back to
// it, then to the configured default.
const folderCookie = "image_folder"

func activeFolder(c *gin.Context) string {
	if v, err := c.Cookie(folderCookie); err == nil && v != "" {
		return v
	}
	return getServices().Config.Storage.DefaultFolder
}

func setActiveFolder(c *gin.Context, name string) {
	c.SetCookie(folderCookie, name, 0, "/", "", false, true)
}
