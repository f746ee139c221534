package preferences

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsMatchPomodoroDefaults(t *testing.T) {
	settings := DefaultSettings()
	config := settings.PomodoroConfig()

	assert.Equal(t, 25*time.Minute, config.Work)
	assert.Equal(t, 5*time.Minute, config.ShortBreak)
	assert.Equal(t, 20*time.Minute, config.LongBreak)
	assert.Equal(t, 4, config.LongBreakEvery)
	assert.False(t, config.AutoStartWork)
	assert.Len(t, settings.Tracks, 10)
}

func TestMediaConfigResolvesPaths(t *testing.T) {
	settings := DefaultSettings()
	absolute := filepath.Join(t.TempDir(), "song.mp3")
	settings.Tracks = []string{"audio/1.mp3", absolute}

	media := settings.MediaConfig("/srv/site")

	assert.Equal(t, filepath.Join("/srv/site", "audio/1.mp3"), media.Tracks[0])
	assert.Equal(t, absolute, media.Tracks[1])
	assert.Equal(t, filepath.Join("/srv/site", settings.FramesDir), media.FramesDir)
	assert.Equal(t, 0.5, media.Volume)

	settings.FramesDir = ""
	assert.Empty(t, settings.MediaConfig("/srv/site").FramesDir)
}

func TestSaveAppliesValidFields(t *testing.T) {
	app := test.NewTempApp(t)
	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.work.SetText("50")
	prefs.short.SetText("ten")
	prefs.long.SetText("-3")
	prefs.longEvery.SetText("3")
	test.Tap(prefs.autoStart)
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.Equal(t, 50*time.Minute, saved.WorkDuration)
	assert.Equal(t, 5*time.Minute, saved.ShortBreak, "invalid input keeps the previous value")
	assert.Equal(t, 20*time.Minute, saved.LongBreak)
	assert.Equal(t, 3, saved.LongBreakEvery)
	assert.True(t, saved.AutoStartWork)
}
