package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

// SavedStats tracks lifetime run statistics across sessions
type SavedStats struct {
	LifetimeCaptures int `json:"lifetimeCaptures"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var runStats SavedStats

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "nightwarden",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true

	if data, err := m.LoadItem("stats"); err == nil && data != nil {
		if err := json.Unmarshal(data, &runStats); err != nil {
			log.Printf("Warning: Could not parse saved stats: %v", err)
		}
	}
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal pushes saved settings into the audio state.
func ApplySavedSettingsGlobal(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
}

// RecordCapture bumps the lifetime capture counter and persists it.
func RecordCapture() {
	runStats.LifetimeCaptures++
	if !gdataInitialized || gdataManager == nil {
		return
	}
	data, err := json.Marshal(&runStats)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("stats", data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
}

// LifetimeCaptures returns the persisted capture total.
func LifetimeCaptures() int { return runStats.LifetimeCaptures }
