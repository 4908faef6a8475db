package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{1500, "25:00"},
		{61, "01:01"},
		{0, "00:00"},
		{-1, "-00:01"},
		{-75, "-01:15"},
		{6000, "100:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatClock(tt.seconds))
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{3599, "0:59:59"},
		{3600, "1:00:00"},
		{-5, "0:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatElapsed(tt.seconds))
	}
}

func TestStateTitle(t *testing.T) {
	assert.Equal(t, "Ready to focus", StatePreFocus.Title())
	assert.Equal(t, "Focus", StateFocus.Title())
	assert.Equal(t, "Time for a break", StatePreBreak.Title())
	assert.Equal(t, "Break", StateBreak.Title())
	assert.Equal(t, "paused", State("paused").Title())
	assert.False(t, State("paused").Valid())
}
