package services

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/DaytimeLobster/gogrow/logger"

	"gopkg.in/yaml.v3"
)

const themeSection = "custom_theme"

// colorValueRe accepts hex codes, CSS color names, and rgb()/rgba() values.
var colorValueRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$|^[a-zA-Z]+$|^rgb\(\d{1,3},\s*\d{1,3},\s*\d{1,3}\)$|^rgba\(\d{1,3},\s*\d{1,3},\s*\d{1,3},\s*(?:0(?:\.\d+)?|1(?:\.0+)?)\)$`)

type SettingsService interface {
	Get(section, key string) (string, bool)
	Update(section, key, value string) error
	// ThemeCSS renders the custom theme section as CSS variable
	// declarations; ok is false when no theme is configured.
	ThemeCSS() (css string, ok bool)
}

// settingsService persists section/key/value settings as a yaml file next to
// the main config. Reads and writes go through one mutex; the file is small
// and rewritten whole on every update.
type settingsService struct {
	mu       sync.Mutex
	path     string
	sections map[string]map[string]string
}

func NewSettingsService(path string) SettingsService {
	s := &settingsService{path: path, sections: map[string]map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Errorf("reading settings file %s: %v", path, err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.sections); err != nil {
		logger.Errorf("parsing settings file %s: %v", path, err)
		s.sections = map[string]map[string]string{}
	}
	return s
}

func (s *settingsService) Get(section, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.sections[section]
	if !ok {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

func (s *settingsService) Update(section, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sections[section] == nil {
		s.sections[section] = map[string]string{}
	}
	s.sections[section][key] = value

	data, err := yaml.Marshal(s.sections)
	if err != nil {
		return newStorageError("failed to encode settings", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return newStorageError("failed to write settings file", err)
	}
	return nil
}

func (s *settingsService) ThemeCSS() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := s.sections[themeSection]
	if len(theme) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(theme))
	for key := range theme {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := theme[key]
		if !colorValueRe.MatchString(value) {
			logger.Errorf("invalid theme color for %s: %s", key, value)
			continue
		}
		fmt.Fprintf(&b, "--%s: %s;\n", key, value)
	}
	return strings.TrimRight(b.String(), "\n"), true
}
