package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_Intervals(t *testing.T) {
	intervals := DefaultSettings().Intervals()

	assert.Equal(t, 1500, intervals.FocusSeconds())
	assert.Equal(t, 300, intervals.BreakSeconds())
}

func TestWindow_SaveParsesEntries(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = append(saved, settings) })
	assert.Equal(t, "25", prefs.focusEntry.Text)

	prefs.focusEntry.SetText(" 50 ")
	prefs.breakEntry.SetText("abc")
	prefs.soundEntry.SetText("bell")
	prefs.handleSave()

	want := Settings{FocusDuration: 50 * time.Minute, BreakDuration: 5 * time.Minute, AlarmSound: "bell"}
	assert.Equal(t, []Settings{want}, saved)
	assert.Equal(t, "5", prefs.breakEntry.Text)
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"15", 15, true},
		{" 7", 7, true},
		{"0", 0, false},
		{"-2", 0, false},
		{"ten", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePositiveInt(tt.value)
		assert.Equal(t, tt.want, got, tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
	}
}
