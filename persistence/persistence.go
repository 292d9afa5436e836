// Package persistence stores the desktop adapter's display preferences.
// Game progress is never saved; every session starts fresh.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "display"

// DisplaySettings represents the settings data stored on disk
type DisplaySettings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowHUD    bool `json:"showHud"`
	ShowFPS    bool `json:"showFps"`
	Muted      bool `json:"muted"`
}

// DefaultDisplaySettings is used until the player changes anything.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{ShowHUD: true, ShowFPS: true}
}

// Store reads and writes settings through gdata. A nil Store is valid and
// behaves as an empty one that discards writes.
type Store struct {
	manager *gdata.Manager
}

// Open initializes the gdata manager for settings storage
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return &Store{manager: m}, nil
}

// Load returns the saved settings, or the defaults when nothing was saved.
func (s *Store) Load() (DisplaySettings, error) {
	settings := DefaultDisplaySettings()
	if s == nil || s.manager == nil {
		return settings, nil
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultDisplaySettings(), fmt.Errorf("parse saved settings: %w", err)
	}
	return settings, nil
}

// Save writes settings to disk
func (s *Store) Save(settings DisplaySettings) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
