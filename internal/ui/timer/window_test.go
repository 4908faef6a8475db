package timer

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/pomodoro"
)

func TestWindow_ButtonsInvokeActions(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var calls []string
	timer := New(app, Actions{
		OnFocus:     func() { calls = append(calls, "focus") },
		OnBreak:     func() { calls = append(calls, "break") },
		OnStopAlarm: func() { calls = append(calls, "stop") },
	})

	test.Tap(timer.focusButton)
	test.Tap(timer.breakButton)
	test.Tap(timer.stopButton)

	assert.Equal(t, []string{"focus", "break", "stop"}, calls)
}

func TestWindow_RendersSession(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	timer := New(app, Actions{})

	timer.setStateUnsafe(pomodoro.StatePreBreak)
	timer.setRemainingUnsafe(-1)
	timer.setFocusTimeUnsafe(1501)
	timer.setTotalTimeUnsafe(1800)

	assert.Equal(t, "Time for a break", timer.stateLabel.Text)
	assert.Equal(t, "-00:01", timer.remainingLabel.Text)
	assert.Equal(t, "0:25:01", timer.focusLabel.Text)
	assert.Equal(t, "0:30:00", timer.totalLabel.Text)
	assert.Equal(t, widget.HighImportance, timer.breakButton.Importance)
	assert.Equal(t, widget.MediumImportance, timer.focusButton.Importance)
}

func TestWindow_StopButtonFollowsAlarm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	timer := New(app, Actions{})
	assert.False(t, timer.stopButton.Visible())

	timer.setAlarmPlayingUnsafe(true)
	assert.True(t, timer.stopButton.Visible())
	assert.True(t, timer.pulse.Running())

	timer.setAlarmPlayingUnsafe(false)
	assert.False(t, timer.stopButton.Visible())
	assert.False(t, timer.pulse.Running())
	assert.Equal(t, remainingColor, timer.remainingLabel.Color)
}

func TestWindow_DimmedFrameOnlyWhileRinging(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	timer := New(app, Actions{})

	timer.setRemainingLitUnsafe(false)
	assert.Equal(t, remainingColor, timer.remainingLabel.Color)

	timer.alarmPlaying = true
	timer.setRemainingLitUnsafe(false)
	assert.Equal(t, dimmedColor, timer.remainingLabel.Color)
}
