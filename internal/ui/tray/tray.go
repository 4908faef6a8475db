package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnFocus       func()
	OnBreak       func()
	OnStopAlarm   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	stopItem    *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	icon        fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.stopItem = fyne.NewMenuItem("Stop alarm", func() {
		if manager.callbacks.OnStopAlarm != nil {
			manager.callbacks.OnStopAlarm()
		}
	})
	manager.stopItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetAlarmPlaying toggles the stop alarm item.
func (manager *Manager) SetAlarmPlaying(playing bool) {
	if manager.stopItem.Disabled == !playing {
		return
	}
	manager.stopItem.Disabled = !playing
	manager.refreshMenu()
}

// SetIcon replaces the tray icon when it changed.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if icon == nil || icon == manager.icon {
		return
	}
	manager.icon = icon
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		manager.item("Show timer", manager.callbacks.OnShow),
		fyne.NewMenuItemSeparator(),
		manager.item("Start focus", manager.callbacks.OnFocus),
		manager.item("Start break", manager.callbacks.OnBreak),
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.item("Preferences", manager.callbacks.OnPreferences),
		manager.item("Quit", manager.callbacks.OnQuit),
	))
}

func (manager *Manager) item(label string, handler func()) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if handler != nil {
			handler()
		}
	})
}
