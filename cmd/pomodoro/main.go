package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/godbus/dbus/v5"

	"pomodoro/internal/alarm"
	"pomodoro/internal/app"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/core/tick"
	"pomodoro/internal/ipc"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timer"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const appName = "Pomodoro"

func main() {
	logger := newLogger()
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("already running, activated existing window")
		} else {
			logger.Error("single instance", "error", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}

	application := app.New(app.Options{
		Settings:   settings,
		Player:     alarm.Lookup(settings.AlarmSound, logger.With("component", "player")),
		NewTicker:  tick.SystemTicker,
		TickPeriod: tick.DefaultPeriod,
		Logger:     logger,
	})
	if !application.Alarm.Bound() {
		logger.Warn("no notification server, alarm is silent")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := fyneapp.NewWithID("dev.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon("focus"))

	var prefsWindow *preferences.Window
	timerWindow := timer.New(fyneApp, timer.Actions{
		OnFocus:      application.Focus,
		OnBreak:      application.Break,
		OnStopAlarm:  application.StopAlarm,
		OnResetFocus: application.ResetFocusTime,
		OnResetTotal: application.ResetTotalTime,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	prefsWindow = preferences.New(fyneApp, application.Settings(), func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Error("save settings", "error", err)
		}
		applySettings(application, updated, logger)
	})

	quit := func() {
		cancel()
		if err := application.Close(); err != nil {
			logger.Debug("close application", "error", err)
		}
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        timerWindow.Show,
			OnFocus:       application.Focus,
			OnBreak:       application.Break,
			OnStopAlarm:   application.StopAlarm,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayWindow(timerWindow.Window())
		timerWindow.Window().SetCloseIntercept(func() {
			timerWindow.Window().Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		timerWindow.Window().SetOnClosed(quit)
	}

	bindTimer(application, timerWindow, trayManager)

	guard.OnActivate(func() {
		fyne.Do(timerWindow.Show)
	})

	go func() {
		err := storage.Watch(ctx, appName, logger.With("component", "settings"), func(updated preferences.Settings) {
			if applySettings(application, updated, logger) {
				fyne.Do(func() {
					prefsWindow.UpdateSettings(updated)
				})
			}
		})
		if err != nil {
			logger.Warn("settings watcher stopped", "error", err)
		}
	}()

	go serveBus(ctx, application, logger.With("component", "ipc"))

	timerWindow.Show()
	fyneApp.Run()
	cancel()
	_ = application.Close()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("POMODORO_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func applySettings(application *app.App, settings preferences.Settings, logger *slog.Logger) bool {
	previous := application.Settings()
	if !application.ApplySettings(settings) {
		return false
	}
	if settings.AlarmSound != previous.AlarmSound {
		logger.Info("alarm sound takes effect after restart", "sound", settings.AlarmSound)
	}
	return true
}

// bindTimer mirrors the timer observables into the window and tray.
// The callbacks run under the controller lock, so they only read
// observable values and hand every update to fyne.Do.
func bindTimer(application *app.App, timerWindow *timer.Window, trayManager *tray.Manager) {
	controller := application.Timer

	timerWindow.SetState(controller.State().Value())
	timerWindow.SetRemaining(controller.RemainingTime().Value())

	controller.State().Subscribe(timerWindow.SetState)
	controller.RemainingTime().Subscribe(timerWindow.SetRemaining)
	controller.FocusTime().Subscribe(timerWindow.SetFocusTime)
	controller.TotalTime().Subscribe(timerWindow.SetTotalTime)
	application.Alarm.IsPlaying().Subscribe(timerWindow.SetAlarmPlaying)

	if trayManager == nil {
		return
	}
	status := func() {
		state := controller.State().Value()
		playing := application.Alarm.IsPlaying().Value()
		label := state.Title()
		if state == pomodoro.StateFocus || state == pomodoro.StateBreak {
			label += " " + pomodoro.FormatClock(controller.RemainingTime().Value())
		}
		fyne.Do(func() {
			trayManager.SetStatus(label)
			trayManager.SetAlarmPlaying(playing)
			trayManager.SetIcon(resources.StateIcon(state, playing))
		})
	}
	status()
	controller.State().Subscribe(func(pomodoro.State) { status() })
	controller.RemainingTime().Subscribe(func(int) { status() })
	application.Alarm.IsPlaying().Subscribe(func(bool) { status() })
}

func serveBus(ctx context.Context, application *app.App, logger *slog.Logger) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		logger.Warn("session bus unavailable, control service disabled", "error", err)
		return
	}
	defer conn.Close()

	err = ipc.Serve(ctx, conn, application, ipc.Observables{
		State:     application.Timer.State(),
		Remaining: application.Timer.RemainingTime(),
		Alarm:     application.Alarm.IsPlaying(),
	}, logger)
	if err != nil {
		logger.Warn("control service", "error", err)
	}
}
