package pomodoro

import (
	"log/slog"
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/observable"
)

// Alarm is played when a session runs out.
type Alarm interface {
	Play()
}

// TickSource delivers one-second ticks to a single listener.
type TickSource interface {
	Listen(listener func())
	Start()
	Stop()
	Terminate()
}

// Intervals supplies the configured session lengths in seconds and
// announces changes to them.
type Intervals interface {
	FocusTime() int
	BreakTime() int
	Subscribe(fn func(model.Intervals)) observable.Subscription
	Unsubscribe(id observable.Subscription)
}

// Controller is the focus/break state machine.
//
// All mutations are serialized by mu. Observable subscribers are called
// synchronously while mu is held, so they may read the observables but
// must not call back into Controller methods that mutate state.
type Controller struct {
	mu           sync.Mutex
	intervals    Intervals
	alarm        Alarm
	ticks        TickSource
	logger       *slog.Logger
	subscription observable.Subscription
	running      bool
	closed       bool

	state         *observable.Observable[State]
	remainingTime *observable.Observable[int]
	focusTime     *observable.Observable[int]
	totalTime     *observable.Observable[int]
}

// New creates a Controller in the pre-focus state and subscribes it to
// interval changes. A nil alarm is treated as silent.
func New(intervals Intervals, alarm Alarm, ticks TickSource, logger *slog.Logger) *Controller {
	if alarm == nil {
		alarm = silentAlarm{}
	}
	if ticks == nil {
		ticks = idleTicks{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	controller := &Controller{
		intervals:     intervals,
		alarm:         alarm,
		ticks:         ticks,
		logger:        logger,
		state:         observable.New(StatePreFocus),
		remainingTime: observable.New(intervals.FocusTime()),
		focusTime:     observable.New(0),
		totalTime:     observable.New(0),
	}

	controller.subscription = intervals.Subscribe(func(model.Intervals) {
		controller.Reset()
	})
	ticks.Listen(controller.handleTick)
	return controller
}

// State exposes the session state.
func (controller *Controller) State() *observable.Observable[State] {
	return controller.state
}

// RemainingTime exposes the seconds left in the current session.
func (controller *Controller) RemainingTime() *observable.Observable[int] {
	return controller.remainingTime
}

// FocusTime exposes the seconds spent in focus.
func (controller *Controller) FocusTime() *observable.Observable[int] {
	return controller.focusTime
}

// TotalTime exposes the seconds the timer has been running.
func (controller *Controller) TotalTime() *observable.Observable[int] {
	return controller.totalTime
}

// IsTimerRunning reports whether ticks are being counted.
func (controller *Controller) IsTimerRunning() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.running
}

// Snapshot returns the current values of every counter.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return Snapshot{
		State:     controller.state.Value(),
		Remaining: controller.remainingTime.Value(),
		FocusTime: controller.focusTime.Value(),
		TotalTime: controller.totalTime.Value(),
		Running:   controller.running,
	}
}

// OnFocus starts a focus session from any state.
func (controller *Controller) OnFocus() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.running = true
	controller.ticks.Start()
	controller.remainingTime.Set(controller.intervals.FocusTime())
	controller.state.Set(StateFocus)
	controller.logger.Info("focus started", "remaining", controller.remainingTime.Value())
}

// OnBreak starts a break session from any state.
func (controller *Controller) OnBreak() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.running = true
	controller.ticks.Start()
	controller.remainingTime.Set(controller.intervals.BreakTime())
	controller.state.Set(StateBreak)
	controller.logger.Info("break started", "remaining", controller.remainingTime.Value())
}

// Reset returns to pre-focus with a full focus interval and stops ticking.
// It runs automatically whenever the intervals change.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.running = false
	controller.remainingTime.Set(controller.intervals.FocusTime())
	controller.state.Set(StatePreFocus)
	controller.ticks.Stop()
	controller.logger.Info("timer reset", "remaining", controller.remainingTime.Value())
}

// ResetFocusTime zeroes the focus counter.
func (controller *Controller) ResetFocusTime() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.focusTime.Set(0)
}

// ResetTotalTime zeroes the focus counter, matching ResetFocusTime.
// The total counter is left untouched; use ClearTotalTime for that.
func (controller *Controller) ResetTotalTime() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.focusTime.Set(0)
}

// ClearTotalTime zeroes the total counter.
func (controller *Controller) ClearTotalTime() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.totalTime.Set(0)
}

// Close terminates the tick source and stops listening for interval
// changes. The controller ignores ticks afterwards.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.running = false
	controller.ticks.Terminate()
	controller.mu.Unlock()

	controller.intervals.Unsubscribe(controller.subscription)
}

func (controller *Controller) handleTick() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.running {
		return
	}

	remaining := controller.remainingTime.Value()
	controller.remainingTime.Set(remaining - 1)
	controller.totalTime.Set(controller.totalTime.Value() + 1)
	if controller.state.Value() == StateFocus {
		controller.focusTime.Set(controller.focusTime.Value() + 1)
	}
	controller.logger.Debug("tick", "state", controller.state.Value(), "remaining", remaining-1)

	if remaining <= 0 {
		controller.finishedLocked()
	}
}

func (controller *Controller) finishedLocked() {
	controller.alarm.Play()

	switch controller.state.Value() {
	case StateFocus:
		controller.state.Set(StatePreBreak)
	case StateBreak:
		controller.state.Set(StatePreFocus)
	}
	controller.logger.Info("session finished", "state", controller.state.Value())
}

type silentAlarm struct{}

func (silentAlarm) Play() {}

type idleTicks struct{}

func (idleTicks) Listen(func()) {}
func (idleTicks) Start()        {}
func (idleTicks) Stop()         {}
func (idleTicks) Terminate()    {}
