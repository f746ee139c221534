package backdrop

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen struct {
	mu      sync.Mutex
	shown   []string
	visible bool
}

func (screen *screen) show(resource fyne.Resource) {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	screen.shown = append(screen.shown, resource.Name())
}

func (screen *screen) setVisible(visible bool) {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	screen.visible = visible
}

func (screen *screen) isVisible() bool {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.visible
}

func (screen *screen) last() string {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.shown[len(screen.shown)-1]
}

func frames(names ...string) []fyne.Resource {
	result := make([]fyne.Resource, len(names))
	for i, name := range names {
		result[i] = fyne.NewStaticResource(name, []byte(name))
	}
	return result
}

func TestPlayWithoutFrames(t *testing.T) {
	out := &screen{}
	player := NewPlayer(nil, 30, out.show, out.setVisible)

	assert.ErrorIs(t, player.Play(), ErrNoFrames)
	assert.False(t, out.isVisible())
	assert.NotPanics(t, player.Stop)
}

func TestPlayLoopsFrames(t *testing.T) {
	out := &screen{}
	player := NewPlayer(frames("a", "b", "c"), 200, out.show, out.setVisible)

	require.NoError(t, player.Play())
	defer player.Stop()
	assert.True(t, out.isVisible())
	assert.True(t, player.Playing())

	assert.Eventually(t, func() bool {
		out.mu.Lock()
		defer out.mu.Unlock()
		return len(out.shown) >= 5
	}, time.Second, 5*time.Millisecond)

	out.mu.Lock()
	assert.Equal(t, []string{"a", "b", "c", "a"}, out.shown[:4])
	out.mu.Unlock()
}

func TestPauseHoldsFrameAndStopRewinds(t *testing.T) {
	out := &screen{}
	player := NewPlayer(frames("a", "b", "c"), 200, out.show, out.setVisible)
	require.NoError(t, player.Play())
	assert.Eventually(t, func() bool { return player.Frame() > 0 }, time.Second, 5*time.Millisecond)

	player.Pause()
	held := player.Frame()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, held, player.Frame())
	assert.False(t, player.Playing())
	assert.True(t, out.isVisible(), "paused video stays on screen")

	require.NoError(t, player.Play())
	assert.Equal(t, frames("a", "b", "c")[held].Name(), out.last())

	player.Stop()
	assert.Zero(t, player.Frame())
	assert.Equal(t, "a", out.last())
	assert.False(t, out.isVisible())
}

func TestLoadFrames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002.png", "001.PNG", "003.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	loaded, err := LoadFrames(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, []byte("001.PNG"), loaded[0].Content())
	assert.Equal(t, []byte("002.png"), loaded[1].Content())
	assert.Equal(t, []byte("003.jpg"), loaded[2].Content())

	none, err := LoadFrames("")
	assert.NoError(t, err)
	assert.Empty(t, none)

	_, err = LoadFrames(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
