package services

import (
	"path/filepath"
	"strings"
)

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer("..", "_", "/", "_", "\\", "_")
	return replacer.Replace(name)
}

func isFileExtensionAllowed(fileName string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	fileExt := strings.ToLower(filepath.Ext(fileName))
	for _, ext := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "*" {
			return true
		}
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if normalized == fileExt {
			return true
		}
	}

	return false
}
