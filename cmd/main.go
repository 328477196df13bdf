package main

import (
	"context"
	"time"

	"countdown/internal/core/timelist"
	"countdown/internal/logging"
	"countdown/internal/platform"
	"countdown/internal/sound"
	"countdown/internal/storage"
	"countdown/internal/ui/countdownwin"
	"countdown/internal/ui/launcher"
	"countdown/internal/ui/preferences"
	"countdown/internal/ui/tray"
	"countdown/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName    = "Countdown"
	appDir     = "countdown"
	appID      = "com.countdown.app"
	appVersion = "1.0.0"
	appURL     = "https://github.com/countdown-app/countdown"

	historyTimeout = 2 * time.Second
)

func main() {
	paths, pathErr := platform.ResolvePaths(appDir)
	if pathErr != nil {
		paths = platform.LocalPaths()
	}
	logging.SetupLogger("info", paths.LogFile)
	logger := logging.GetLogger("main")
	if pathErr != nil {
		logger.Warn().Err(pathErr).Msg("using the working directory for application files")
	}

	logger.Info().Str("app", appName).Str("version", appVersion).Msg("starting")

	guard, err := platform.AcquireSingleInstance(paths.LockFile)
	if err != nil {
		logger.Warn().Err(err).Msg("single instance lock not held, saved times may be overwritten")
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, settingsErr := storage.LoadSettings(paths.SettingsFile)
	logging.SetLevel(settings.LogLevel)

	timesStore := storage.NewTimesStore(paths.TimesFile)
	config, loadErr := timesStore.Load()
	times := timelist.New(config, timesStore)

	history, err := storage.OpenHistory(context.Background(), paths.HistoryFile)
	if err != nil {
		logger.Warn().Err(err).Msg("history disabled")
		history = nil
	}
	defer func() {
		_ = history.Close()
	}()

	player := sound.NewPlayer()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())

	open := make(map[*countdownwin.Window]struct{})
	var trayManager *tray.Manager

	recordSession := func(result countdownwin.Result) {
		if history == nil {
			return
		}
		outcome := storage.OutcomeCancelled
		if result.Expired {
			outcome = storage.OutcomeExpired
		}
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		if _, err := history.Record(ctx, storage.Session{
			Seconds:   result.Seconds,
			StartedAt: result.StartedAt,
			EndedAt:   result.EndedAt,
			Outcome:   outcome,
		}); err != nil {
			logger.Warn().Err(err).Msg("record session")
		}
	}

	startCountdown := func(seconds int) error {
		var window *countdownwin.Window
		window, err := countdownwin.New(fyneApp, seconds, settings, player, func(result countdownwin.Result) {
			delete(open, window)
			if trayManager != nil {
				trayManager.SetOpen(len(open))
			}
			recordSession(result)
		})
		if err != nil {
			return err
		}
		open[window] = struct{}{}
		if trayManager != nil {
			trayManager.SetOpen(len(open))
		}
		logger.Info().Int("seconds", seconds).Msg("countdown started")
		window.Show()
		return nil
	}

	closeAll := func() {
		for window := range open {
			window.Close()
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		logging.SetLevel(settings.LogLevel)
		if err := storage.SaveSettings(paths.SettingsFile, settings); err != nil {
			logger.Warn().Err(err).Msg("save settings")
		}
		logger.Info().Str("alert", settings.Summary()).Msg("settings updated")
	})

	var historyReader launcher.HistoryReader
	if history != nil {
		historyReader = history
	}
	mainWindow := launcher.New(fyneApp, times, launcher.Options{
		Version: appVersion,
		URL:     appURL,
		History: historyReader,
	}, launcher.Callbacks{
		OnStart: startCountdown,
		OnTimesChanged: func(presets, custom []int) {
			if trayManager != nil {
				trayManager.SetTimes(presets, custom)
			}
		},
		OnPreferences: prefsWindow.Show,
	})
	mainWindow.Window().SetMaster()
	mainWindow.Window().SetCloseIntercept(func() {
		closeAll()
		mainWindow.Window().Close()
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnStart: func(seconds int) {
				mainWindow.Report(startCountdown(seconds))
			},
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				closeAll()
				fyneApp.Quit()
			},
		})
		trayManager.SetTimes(times.Presets(), times.Items())
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
	} else {
		logger.Info().Msg("system tray unsupported on this platform")
	}

	mainWindow.Show()
	mainWindow.Report(loadErr)
	mainWindow.Report(settingsErr)
	fyneApp.Run()
}
