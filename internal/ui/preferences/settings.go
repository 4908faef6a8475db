package preferences

import (
	"time"

	"pomodoro/internal/alarm"
	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	FocusDuration time.Duration
	BreakDuration time.Duration
	AlarmSound    string
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		FocusDuration: 25 * time.Minute,
		BreakDuration: 5 * time.Minute,
		AlarmSound:    alarm.DefaultSound,
	}
}

// Intervals converts settings to the session lengths used by the timer.
func (settings Settings) Intervals() model.Intervals {
	return model.Intervals{
		Focus: settings.FocusDuration,
		Break: settings.BreakDuration,
	}
}
