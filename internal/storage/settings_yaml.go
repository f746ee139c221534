package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio/internal/core/model"
	"portfolio/internal/platform"
	"portfolio/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlRegion struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type yamlSettings struct {
	WorkMinutes       int          `yaml:"work_minutes"`
	ShortBreakMinutes int          `yaml:"short_break_minutes"`
	LongBreakMinutes  int          `yaml:"long_break_minutes"`
	LongBreakEvery    int          `yaml:"long_break_every"`
	AutoStartWork     bool         `yaml:"auto_start_work"`
	Volume            float64      `yaml:"volume"`
	Tracks            []string     `yaml:"tracks,omitempty"`
	FramesDir         string       `yaml:"frames_dir,omitempty"`
	FramesPerSecond   int          `yaml:"frames_per_second,omitempty"`
	About             []yamlRegion `yaml:"about,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
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

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:       int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes: int(settings.ShortBreak / time.Minute),
		LongBreakMinutes:  int(settings.LongBreak / time.Minute),
		LongBreakEvery:    settings.LongBreakEvery,
		AutoStartWork:     settings.AutoStartWork,
		Volume:            settings.Volume,
		Tracks:            settings.Tracks,
		FramesDir:         settings.FramesDir,
		FramesPerSecond:   settings.FramesPerSecond,
	}
	for _, region := range settings.About {
		fileData.About = append(fileData.About, yamlRegion{
			ID:          region.ID,
			Title:       region.Title,
			Description: region.Description,
		})
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

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreak = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreak = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.LongBreakEvery > 0 {
		settings.LongBreakEvery = fileData.LongBreakEvery
	}
	if fileData.Volume > 0 && fileData.Volume <= 1 {
		settings.Volume = fileData.Volume
	}
	if len(fileData.Tracks) > 0 {
		settings.Tracks = fileData.Tracks
	}
	if fileData.FramesDir != "" {
		settings.FramesDir = fileData.FramesDir
	}
	if fileData.FramesPerSecond > 0 {
		settings.FramesPerSecond = fileData.FramesPerSecond
	}
	if len(fileData.About) > 0 {
		settings.About = settings.About[:0:0]
		for _, region := range fileData.About {
			if region.ID == "" {
				continue
			}
			settings.About = append(settings.About, model.AboutRegion{
				ID:          region.ID,
				Title:       region.Title,
				Description: region.Description,
			})
		}
	}

	settings.AutoStartWork = fileData.AutoStartWork
}
