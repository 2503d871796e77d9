package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK answers the legacy mutation endpoints that reply with a bare "OK" body.
func OK(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func ErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"error": message, "data": data})
}
