package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"portfolio/internal/core/pomodoro"
	"portfolio/internal/media"
	"portfolio/internal/media/ebitenaudio"
	"portfolio/internal/platform"
	"portfolio/internal/storage"
	"portfolio/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const appName = "PortfolioStudio"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	logger, err := newFileLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", zap.Error(err))
	}
	mediaConfig := settings.MediaConfig(platform.AssetsDir())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := ebitenaudio.NewBackend(ebitenaudio.DefaultSampleRate)
	jukebox := media.NewJukebox(mediaConfig.Tracks, backend.Open, mediaConfig.Volume, logger.Named("jukebox"))
	go jukebox.Watch(ctx, 250*time.Millisecond)

	presenter := terminal.NewPresenter()
	controller := pomodoro.New(settings.PomodoroConfig(), pomodoro.Options{
		Presenter: presenter,
		Audio:     jukebox,
		Scheduler: pomodoro.NewTickerScheduler(time.Second),
		Logger:    logger.Named("pomodoro"),
	})
	defer controller.Close()

	program := tea.NewProgram(terminal.NewModel(controller, presenter), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// newFileLogger writes logs next to settings.yaml so they stay off the terminal.
func newFileLogger() (*zap.Logger, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{filepath.Join(configDir, "tui.log")}
	config.ErrorOutputPaths = config.OutputPaths
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
