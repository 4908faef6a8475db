package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	focusEntry *widget.Entry
	breakEntry *widget.Entry
	soundEntry *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	focusEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	soundEntry := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Intervals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus for"), focusEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break for"), breakEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Alarm", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Sound name"), soundEntry),
		widget.NewLabel("Saving resets the running timer."),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		focusEntry: focusEntry,
		breakEntry: breakEntry,
		soundEntry: soundEntry,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focusEntry.SetText(fmt.Sprintf("%d", int(settings.FocusDuration.Minutes())))
	prefs.breakEntry.SetText(fmt.Sprintf("%d", int(settings.BreakDuration.Minutes())))
	prefs.soundEntry.SetText(settings.AlarmSound)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	prefs.UpdateSettings(prefs.settings)
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the entries, keeping the previous value for any field
// that does not parse.
func (prefs *Window) collect() Settings {
	settings := prefs.settings
	if minutes, ok := parsePositiveInt(prefs.focusEntry.Text); ok {
		settings.FocusDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakDuration = time.Duration(minutes) * time.Minute
	}
	if sound := strings.TrimSpace(prefs.soundEntry.Text); sound != "" {
		settings.AlarmSound = sound
	}
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
