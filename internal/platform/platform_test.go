package platform

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	resolved, err := ConfigDir("PortfolioStudio")
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	resolved, err := ConfigDir("PortfolioStudio")
	require.NoError(t, err)
	assert.Equal(t, "PortfolioStudio", filepath.Base(resolved))
}

func TestAssetsDirOverride(t *testing.T) {
	t.Setenv(AssetsDirEnv, "/srv/site")
	assert.Equal(t, "/srv/site", AssetsDir())

	t.Setenv(AssetsDirEnv, "")
	assert.NotEmpty(t, AssetsDir())
}

func TestSingleInstance(t *testing.T) {
	name := fmt.Sprintf("portfolio-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestSecondLaunchActivatesRunningInstance(t *testing.T) {
	name := fmt.Sprintf("portfolio-activate-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	activated := make(chan struct{}, 1)
	served := make(chan struct{})
	go func() {
		guard.Serve(func() { activated <- struct{}{} })
		close(served)
	}()

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}

	require.NoError(t, guard.Release())
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Release")
	}
}

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("PortfolioStudio")
	assert.Equal(t, port, portFromName("PortfolioStudio"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}
