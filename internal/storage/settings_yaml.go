package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spectro/internal/core/board"
	"spectro/internal/platform"
	"spectro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundOn              *bool  `yaml:"sound_on"`
	VolumePercent        *int   `yaml:"volume_percent"`
	WorkDurationMinutes  int    `yaml:"work_duration_minutes"`
	BreakDurationMinutes int    `yaml:"break_duration_minutes"`
	AlarmSound           string `yaml:"alarm_sound,omitempty"`
	Opponent             string `yaml:"opponent,omitempty"`
}

// Store reads and writes the settings file under the user config directory.
type Store struct {
	appName string
	service platform.Service
}

// NewStore returns a settings store for appName.
func NewStore(appName string, service platform.Service) *Store {
	if service == nil {
		service = platform.NewService()
	}
	return &Store{appName: appName, service: service}
}

// Path returns the settings file location.
func (store *Store) Path() (string, error) {
	configDir, err := store.service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, store.appName, settingsFileName), nil
}

// Load reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := store.Path()
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	configPath, err := store.Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalized()
	soundOn := settings.SoundOn
	volume := settings.Volume
	fileData := yamlSettings{
		SoundOn:              &soundOn,
		VolumePercent:        &volume,
		WorkDurationMinutes:  int(settings.WorkDuration / time.Minute),
		BreakDurationMinutes: int(settings.BreakDuration / time.Minute),
		AlarmSound:           settings.AlarmSound,
		Opponent:             string(settings.Opponent),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SoundOn != nil {
		settings.SoundOn = *fileData.SoundOn
	}
	if fileData.VolumePercent != nil {
		settings.Volume = *fileData.VolumePercent
	}
	if fileData.WorkDurationMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkDurationMinutes) * time.Minute
	}
	if fileData.BreakDurationMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakDurationMinutes) * time.Minute
	}
	settings.AlarmSound = fileData.AlarmSound
	settings.Opponent = board.ParseOpponent(fileData.Opponent)
	*settings = settings.Normalized()
}
