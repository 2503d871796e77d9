package services

import (
	"path/filepath"
	"strings"
	"testing"
)

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.yaml")
}

func TestSettingsGetMissingValue(t *testing.T) {
	svc := NewSettingsService(settingsPath(t))

	if _, ok := svc.Get("general", "units"); ok {
		t.Fatalf("expected missing value")
	}
}

func TestSettingsUpdatePersistsAcrossReload(t *testing.T) {
	path := settingsPath(t)

	svc := NewSettingsService(path)
	if err := svc.Update("general", "units", "metric"); err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded := NewSettingsService(path)
	value, ok := reloaded.Get("general", "units")
	if !ok || value != "metric" {
		t.Fatalf("expected persisted value, got %q ok=%v", value, ok)
	}
}

func TestSettingsUpdateOverwritesValue(t *testing.T) {
	svc := NewSettingsService(settingsPath(t))

	if err := svc.Update("general", "units", "metric"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := svc.Update("general", "units", "imperial"); err != nil {
		t.Fatalf("second update: %v", err)
	}

	value, ok := svc.Get("general", "units")
	if !ok || value != "imperial" {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestThemeCSSRendersSortedVariables(t *testing.T) {
	svc := NewSettingsService(settingsPath(t))

	for key, value := range map[string]string{
		"primary-color":   "#336699",
		"accent-color":    "rgb(10, 20, 30)",
		"background128px": "white",
	} {
		if err := svc.Update("custom_theme", key, value); err != nil {
			t.Fatalf("update %s: %v", key, err)
		}
	}

	css, ok := svc.ThemeCSS()
	if !ok {
		t.Fatalf("expected theme css")
	}

	lines := strings.Split(css, "\n")
	want := []string{
		"--accent-color: rgb(10, 20, 30);",
		"--background128px: white;",
		"--primary-color: #336699;",
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected css: %q", css)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d mismatch: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestThemeCSSSkipsInvalidColors(t *testing.T) {
	svc := NewSettingsService(settingsPath(t))

	if err := svc.Update("custom_theme", "good", "#fff"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Update("custom_theme", "bad", "url(javascript:alert(1))"); err != nil {
		t.Fatalf("update: %v", err)
	}

	css, ok := svc.ThemeCSS()
	if !ok {
		t.Fatalf("expected theme css")
	}
	if strings.Contains(css, "javascript") {
		t.Fatalf("expected invalid value to be skipped: %q", css)
	}
	if css != "--good: #fff;" {
		t.Fatalf("unexpected css: %q", css)
	}
}

func TestThemeCSSMissingSection(t *testing.T) {
	svc := NewSettingsService(settingsPath(t))

	if _, ok := svc.ThemeCSS(); ok {
		t.Fatalf("expected no theme css")
	}
}
