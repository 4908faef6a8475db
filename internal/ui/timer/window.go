// Package timer renders the pomodoro session in a fyne window.
package timer

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/animation"
)

var (
	remainingColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	dimmedColor    = color.NRGBA{R: 232, G: 190, B: 66, A: 70}
)

// Actions defines the handlers behind the window buttons.
type Actions struct {
	OnFocus       func()
	OnBreak       func()
	OnStopAlarm   func()
	OnResetFocus  func()
	OnResetTotal  func()
	OnPreferences func()
}

// Window shows the running session.
type Window struct {
	window         fyne.Window
	actions        Actions
	stateLabel     *canvas.Text
	remainingLabel *canvas.Text
	focusLabel     *widget.Label
	totalLabel     *widget.Label
	focusButton    *widget.Button
	breakButton    *widget.Button
	stopButton     *widget.Button
	pulse          *animation.Engine
	state          pomodoro.State
	alarmPlaying   bool
}

// New creates the timer window.
func New(app fyne.App, actions Actions) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stateLabel := canvas.NewText("", stateColor(pomodoro.StatePreFocus))
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	stateLabel.TextSize = 18

	remainingLabel := canvas.NewText("--:--", remainingColor)
	remainingLabel.Alignment = fyne.TextAlignCenter
	remainingLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	remainingLabel.TextSize = 56

	timer := &Window{
		window:         window,
		actions:        actions,
		stateLabel:     stateLabel,
		remainingLabel: remainingLabel,
		focusLabel:     widget.NewLabel(""),
		totalLabel:     widget.NewLabel(""),
	}

	timer.pulse = animation.New(animation.DefaultConfig(), func(lit bool) {
		fyne.Do(func() {
			timer.setRemainingLitUnsafe(lit)
		})
	})

	timer.focusButton = widget.NewButton("Focus", func() { call(timer.actions.OnFocus) })
	timer.breakButton = widget.NewButton("Break", func() { call(timer.actions.OnBreak) })
	timer.stopButton = widget.NewButton("Stop alarm", func() { call(timer.actions.OnStopAlarm) })
	timer.stopButton.Importance = widget.DangerImportance
	timer.stopButton.Hide()

	resetFocus := widget.NewButton("Reset", func() { call(timer.actions.OnResetFocus) })
	resetTotal := widget.NewButton("Reset", func() { call(timer.actions.OnResetTotal) })
	preferences := widget.NewButton("Preferences", func() { call(timer.actions.OnPreferences) })

	counters := container.NewGridWithColumns(3,
		widget.NewLabel("Focus time"), timer.focusLabel, resetFocus,
		widget.NewLabel("Total time"), timer.totalLabel, resetTotal,
	)
	modes := container.NewGridWithColumns(2, timer.focusButton, timer.breakButton)
	footer := container.NewHBox(layout.NewSpacer(), preferences)

	window.SetContent(container.NewVBox(
		stateLabel,
		remainingLabel,
		timer.stopButton,
		modes,
		widget.NewSeparator(),
		counters,
		footer,
	))
	window.Resize(fyne.NewSize(360, 380))

	timer.setStateUnsafe(pomodoro.StatePreFocus)
	timer.setFocusTimeUnsafe(0)
	timer.setTotalTimeUnsafe(0)
	return timer
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// SetState updates the state heading. Safe from any goroutine.
func (timer *Window) SetState(state pomodoro.State) {
	fyne.Do(func() {
		timer.setStateUnsafe(state)
	})
}

// SetRemaining updates the countdown. Safe from any goroutine.
func (timer *Window) SetRemaining(seconds int) {
	fyne.Do(func() {
		timer.setRemainingUnsafe(seconds)
	})
}

// SetFocusTime updates the focus counter. Safe from any goroutine.
func (timer *Window) SetFocusTime(seconds int) {
	fyne.Do(func() {
		timer.setFocusTimeUnsafe(seconds)
	})
}

// SetTotalTime updates the total counter. Safe from any goroutine.
func (timer *Window) SetTotalTime(seconds int) {
	fyne.Do(func() {
		timer.setTotalTimeUnsafe(seconds)
	})
}

// SetAlarmPlaying shows or hides the stop button. Safe from any goroutine.
func (timer *Window) SetAlarmPlaying(playing bool) {
	fyne.Do(func() {
		timer.setAlarmPlayingUnsafe(playing)
	})
}

func (timer *Window) setStateUnsafe(state pomodoro.State) {
	timer.state = state
	timer.stateLabel.Text = state.Title()
	timer.stateLabel.Color = stateColor(state)
	timer.stateLabel.Refresh()

	timer.focusButton.Importance = widget.MediumImportance
	timer.breakButton.Importance = widget.MediumImportance
	switch state {
	case pomodoro.StatePreFocus:
		timer.focusButton.Importance = widget.HighImportance
	case pomodoro.StatePreBreak:
		timer.breakButton.Importance = widget.HighImportance
	}
	timer.focusButton.Refresh()
	timer.breakButton.Refresh()
}

func (timer *Window) setRemainingUnsafe(seconds int) {
	timer.remainingLabel.Text = pomodoro.FormatClock(seconds)
	timer.remainingLabel.Refresh()
}

func (timer *Window) setFocusTimeUnsafe(seconds int) {
	timer.focusLabel.SetText(pomodoro.FormatElapsed(seconds))
}

func (timer *Window) setTotalTimeUnsafe(seconds int) {
	timer.totalLabel.SetText(pomodoro.FormatElapsed(seconds))
}

// setAlarmPlayingUnsafe shows the stop button and pulses the countdown
// while the alarm rings.
func (timer *Window) setAlarmPlayingUnsafe(playing bool) {
	if playing == timer.alarmPlaying {
		return
	}
	timer.alarmPlaying = playing
	if playing {
		timer.stopButton.Show()
		timer.pulse.StartPulse(context.Background())
		return
	}
	timer.pulse.Stop()
	timer.stopButton.Hide()
	timer.setRemainingLitUnsafe(true)
}

func (timer *Window) setRemainingLitUnsafe(lit bool) {
	textColor := remainingColor
	if timer.alarmPlaying && !lit {
		textColor = dimmedColor
	}
	timer.remainingLabel.Color = textColor
	timer.remainingLabel.Refresh()
}

func stateColor(state pomodoro.State) color.Color {
	switch state {
	case pomodoro.StateFocus:
		return color.NRGBA{R: 220, G: 80, B: 60, A: 255}
	case pomodoro.StateBreak:
		return color.NRGBA{R: 70, G: 170, B: 110, A: 255}
	default:
		return color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
