package main

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"portfolio/internal/core/pomodoro"
	"portfolio/internal/media"
	"portfolio/internal/media/ebitenaudio"
	"portfolio/internal/platform"
	"portfolio/internal/storage"
	"portfolio/internal/ui/about"
	"portfolio/internal/ui/backdrop"
	"portfolio/internal/ui/creative"
	"portfolio/internal/ui/preferences"
	"portfolio/internal/ui/tray"
	"portfolio/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const appName = "PortfolioStudio"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Info("single instance", zap.Error(err))
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", zap.Error(err))
	}
	mediaConfig := settings.MediaConfig(platform.AssetsDir())

	fyneApp := app.NewWithID("com.portfolio.studio")
	workIcon := resources.MustLogo("studio.svg")
	breakIcon := resources.MustLogo("studio_break.svg")
	fyneApp.SetIcon(workIcon)

	window := fyneApp.NewWindow("Portfolio")
	window.Resize(fyne.NewSize(960, 640))
	go guard.Serve(func() {
		fyne.Do(func() {
			window.Show()
			window.RequestFocus()
		})
	})

	frames, err := backdrop.LoadFrames(mediaConfig.FramesDir)
	if err != nil {
		logger.Warn("backdrop frames unavailable", zap.String("dir", mediaConfig.FramesDir), zap.Error(err))
	}
	video := backdrop.NewVideo(frames, mediaConfig.FramesPerSecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := ebitenaudio.NewBackend(ebitenaudio.DefaultSampleRate)
	jukebox := media.NewJukebox(mediaConfig.Tracks, backend.Open, mediaConfig.Volume, logger.Named("jukebox"))
	go jukebox.Watch(ctx, 250*time.Millisecond)

	screen := creative.NewScreen(window, video.CanvasObject())
	controller := pomodoro.New(settings.PomodoroConfig(), pomodoro.Options{
		Presenter: screen,
		Video:     video,
		Audio:     jukebox,
		Scheduler: pomodoro.NewTickerScheduler(time.Second),
		Logger:    logger.Named("pomodoro"),
	})
	screen.Bind(controller)
	controller.Refresh()

	aboutPage := about.NewPage(settings.About)
	tabs := container.NewAppTabs(
		container.NewTabItem("About", aboutPage.CanvasObject()),
		container.NewTabItem("Creative", screen.CanvasObject()),
	)
	window.SetContent(tabs)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Warn("save settings", zap.Error(err))
		}
		controller.UpdateConfig(settings.PomodoroConfig())
		jukebox.SetVolume(settings.Volume)
	})

	quit := func() {
		cancel()
		controller.Close()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnPreferences: prefsWindow.Show,
			OnTogglePause: func() {
				controller.Toggle()
			},
			OnSkipWork: func() {
				controller.SkipWork()
			},
			OnSkipBreak: func() {
				controller.SkipBreak()
			},
			OnReset: controller.Reset,
			OnQuit:  quit,
		})
		desktopApp.SetSystemTrayIcon(workIcon)

		events := controller.Subscribe(8)
		go func() {
			for event := range events {
				state := event.State
				fyne.Do(func() {
					trayManager.SetState(state)
					if event.Type == pomodoro.EventTick {
						return
					}
					if state.Phase == pomodoro.PhaseBreak {
						desktopApp.SetSystemTrayIcon(breakIcon)
					} else {
						desktopApp.SetSystemTrayIcon(workIcon)
					}
				})
			}
		}()

		window.SetCloseIntercept(func() {
			window.Hide()
		})
	} else {
		window.SetCloseIntercept(quit)
	}

	window.SetMaster()
	window.ShowAndRun()
}
