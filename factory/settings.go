package factory

import (
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/callsheet/budget-engine/award"
)

// =============================================================================
// FRINGE SETTINGS STORE - file-backed, hot-reloadable
// =============================================================================

// SettingsStore persists fringe settings as a small JSON file.
// Settings are re-read per calculation (hot reload between requests,
// immutable during one) and fall back to the statutory defaults when
// the file is missing or partial.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewSettingsStore creates a store over the given file path. The
// file need not exist yet.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load returns the current fringe settings. Missing file or fields
// fall back to defaults; a malformed file degrades to pure defaults.
func (s *SettingsStore) Load() award.FringeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := award.DefaultFringeSettings()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return settings
	}

	// Unmarshal over the defaults: fields absent from the file keep
	// their default values.
	if err := json.Unmarshal(raw, &settings); err != nil {
		return award.DefaultFringeSettings()
	}
	return settings
}

// Save writes the settings file.
func (s *SettingsStore) Save(settings award.FringeSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fringe settings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write fringe settings: %w", err)
	}
	return nil
}
