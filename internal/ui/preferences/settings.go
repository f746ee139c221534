package preferences

import (
	"path/filepath"
	"time"

	"portfolio/internal/core/model"
	"portfolio/resources"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration   time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	LongBreakEvery int
	AutoStartWork  bool

	Volume          float64
	Tracks          []string
	FramesDir       string
	FramesPerSecond int

	About []model.AboutRegion
}

// DefaultSettings returns default settings with the embedded playlist and about page.
func DefaultSettings() Settings {
	pomodoro := model.DefaultPomodoroConfig()
	defaults := resources.MustDefaults()
	return Settings{
		WorkDuration:    pomodoro.Work,
		ShortBreak:      pomodoro.ShortBreak,
		LongBreak:       pomodoro.LongBreak,
		LongBreakEvery:  pomodoro.LongBreakEvery,
		AutoStartWork:   false,
		Volume:          0.5,
		Tracks:          defaults.Tracks,
		FramesDir:       defaults.FramesDir,
		FramesPerSecond: 12,
		About:           defaults.About,
	}
}

// PomodoroConfig converts settings to PomodoroConfig.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Work:           settings.WorkDuration,
		ShortBreak:     settings.ShortBreak,
		LongBreak:      settings.LongBreak,
		LongBreakEvery: settings.LongBreakEvery,
		AutoStartWork:  settings.AutoStartWork,
	}
}

// MediaConfig converts settings to MediaConfig, resolving relative paths against assetsDir.
func (settings Settings) MediaConfig(assetsDir string) model.MediaConfig {
	tracks := make([]string, len(settings.Tracks))
	for i, track := range settings.Tracks {
		tracks[i] = resolve(assetsDir, track)
	}
	framesDir := ""
	if settings.FramesDir != "" {
		framesDir = resolve(assetsDir, settings.FramesDir)
	}
	return model.MediaConfig{
		Tracks:          tracks,
		Volume:          settings.Volume,
		FramesDir:       framesDir,
		FramesPerSecond: settings.FramesPerSecond,
	}
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
