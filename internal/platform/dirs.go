package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirEnv overrides the directory holding settings.yaml.
	ConfigDirEnv = "PORTFOLIO_CONFIG_DIR"
	// AssetsDirEnv overrides the directory holding audio tracks and video frames.
	AssetsDirEnv = "PORTFOLIO_ASSETS_DIR"
)

// ConfigDir returns the per-user configuration directory for appName.
func ConfigDir(appName string) (string, error) {
	if override := os.Getenv(ConfigDirEnv); override != "" {
		return override, nil
	}

	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return filepath.Join(configDir, appName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return filepath.Join(fallbackConfigDir(homeDir), appName), nil
}

// AssetsDir returns the directory media paths are resolved against: the
// override if set, otherwise the working directory.
func AssetsDir() string {
	if override := os.Getenv(AssetsDirEnv); override != "" {
		return override
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return workingDir
}
