package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DaytimeLobster/gogrow/logger"
	"github.com/DaytimeLobster/gogrow/services"

	"github.com/gin-gonic/gin"
)

// csvResponseWriter defers the download headers until the first byte of CSV
// is written, so validation failures inside the export service can still
// answer with a plain error response instead of a mislabeled attachment.
type csvResponseWriter struct {
	c        *gin.Context
	filename string
	started  bool
}

func (w *csvResponseWriter) Write(p []byte) (int, error) {
	if !w.started {
		w.started = true
		w.c.Header("Content-Type", "text/csv; charset=utf-8")
		w.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", w.filename))
	}
	return w.c.Writer.Write(p)
}

// ExportData streams the folder's markers and lines as CSV. The service
// validates before writing, so failures before the first byte still produce
// an error response; a mid-stream failure can only be logged.
func ExportData(c *gin.Context) {
	folder := c.Param("folder")

	w := &csvResponseWriter{c: c, filename: folder + "_export.csv"}
	err := getServices().Export.ExportCSV(c.Request.Context(), folder, w)
	if err != nil {
		if !c.Writer.Written() {
			respondServiceError(c, err)
			return
		}
		logger.Errorf("export for %s failed mid-stream: %v", folder, err)
	}
}

// ExportJournals redirects home on an invalid folder, matching the page flow
// the export links live in.
func ExportJournals(c *gin.Context) {
	folder := c.Param("folder")

	w := &csvResponseWriter{c: c, filename: folder + "_journals.csv"}
	err := getServices().Export.ExportJournalsCSV(c.Request.Context(), folder, w)
	if err != nil {
		if !c.Writer.Written() {
			var appErr *services.AppError
			if errors.As(err, &appErr) && appErr.Kind == services.KindInvalidFolderName {
				c.Redirect(http.StatusFound, "/")
				return
			}
			respondServiceError(c, err)
			return
		}
		logger.Errorf("journal export for %s failed mid-stream: %v", folder, err)
	}
}
