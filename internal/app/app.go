// Package app owns the single timer session of the process and the
// collaborators it needs.
package app

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"pomodoro/internal/alarm"
	"pomodoro/internal/core/interval"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/core/tick"
	"pomodoro/internal/ui/preferences"
)

// ErrAlreadyConstructed is the panic value of a second New call.
var ErrAlreadyConstructed = errors.New("application context already constructed")

var constructed atomic.Bool

// Options configures New.
type Options struct {
	Settings preferences.Settings
	// Player backs the alarm. Nil gives a silent alarm.
	Player alarm.Player
	// NewTicker drives the tick source. Nil disables ticking.
	NewTicker  tick.TickerFunc
	TickPeriod time.Duration
	Logger     *slog.Logger
}

// App is the application context. Exactly one may exist per process.
type App struct {
	Intervals *interval.Provider
	Alarm     *alarm.Alarm
	Ticks     *tick.Source
	Timer     *pomodoro.Controller

	logger    *slog.Logger
	mu        sync.Mutex
	settings  preferences.Settings
	closeOnce sync.Once
}

// New builds the application context. It panics with
// ErrAlreadyConstructed when called more than once.
func New(options Options) *App {
	if !constructed.CompareAndSwap(false, true) {
		panic(ErrAlreadyConstructed)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	intervals := interval.New(options.Settings.Intervals())
	alarmTrigger := alarm.New(options.Player, logger.With("component", "alarm"))
	ticks := tick.New(options.TickPeriod, options.NewTicker, logger.With("component", "tick"))
	timer := pomodoro.New(intervals, alarmTrigger, ticks, logger.With("component", "timer"))

	return &App{
		Intervals: intervals,
		Alarm:     alarmTrigger,
		Ticks:     ticks,
		Timer:     timer,
		logger:    logger,
		settings:  options.Settings,
	}
}

// Focus silences a ringing alarm and starts a focus session.
func (app *App) Focus() {
	app.Alarm.Stop()
	app.Timer.OnFocus()
}

// Break silences a ringing alarm and starts a break.
func (app *App) Break() {
	app.Alarm.Stop()
	app.Timer.OnBreak()
}

// StopAlarm silences the alarm without changing the session.
func (app *App) StopAlarm() {
	app.Alarm.Stop()
}

// Reset returns the timer to pre-focus.
func (app *App) Reset() {
	app.Timer.Reset()
}

// ResetFocusTime zeroes the focus counter.
func (app *App) ResetFocusTime() {
	app.Timer.ResetFocusTime()
}

// ResetTotalTime behaves like Controller.ResetTotalTime.
func (app *App) ResetTotalTime() {
	app.Timer.ResetTotalTime()
}

// Snapshot returns the timer counters.
func (app *App) Snapshot() pomodoro.Snapshot {
	return app.Timer.Snapshot()
}

// AlarmPlaying reports whether the alarm is ringing.
func (app *App) AlarmPlaying() bool {
	return app.Alarm.IsPlaying().Value()
}

// Settings returns the settings currently applied.
func (app *App) Settings() preferences.Settings {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.settings
}

// ApplySettings publishes new intervals, which resets the timer. It
// reports false and does nothing when settings are unchanged.
func (app *App) ApplySettings(settings preferences.Settings) bool {
	app.mu.Lock()
	if settings == app.settings {
		app.mu.Unlock()
		return false
	}
	app.settings = settings
	app.mu.Unlock()

	app.logger.Info("settings applied",
		"focus", settings.FocusDuration,
		"break", settings.BreakDuration)
	app.Intervals.Set(settings.Intervals())
	return true
}

// Close terminates the tick source and releases the alarm. The context
// itself stays constructed for the life of the process.
func (app *App) Close() error {
	var err error
	app.closeOnce.Do(func() {
		app.Timer.Close()
		err = app.Alarm.Close()
	})
	return err
}
