package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDesktop struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (d *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	d.menus = append(d.menus, menu)
}

func (d *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	d.icons = append(d.icons, icon)
}

func (d *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func TestManager_StatusAndAlarm(t *testing.T) {
	desktop := &fakeDesktop{}
	manager := New(desktop, Callbacks{})
	assert.Len(t, desktop.menus, 1)
	assert.True(t, manager.stopItem.Disabled)

	manager.SetStatus("Focus 24:59")
	manager.SetStatus("Focus 24:59")
	assert.Equal(t, "Status: Focus 24:59", manager.statusItem.Label)
	assert.Equal(t, "Focus 24:59", manager.Status())
	assert.Len(t, desktop.menus, 2)

	manager.SetAlarmPlaying(true)
	manager.SetAlarmPlaying(true)
	assert.False(t, manager.stopItem.Disabled)
	assert.Len(t, desktop.menus, 3)
}

func TestManager_ItemsInvokeCallbacks(t *testing.T) {
	var calls []string
	desktop := &fakeDesktop{}
	New(desktop, Callbacks{
		OnFocus:     func() { calls = append(calls, "focus") },
		OnStopAlarm: func() { calls = append(calls, "stop") },
	})

	for _, item := range desktop.menus[0].Items {
		if item.Action != nil {
			item.Action()
		}
	}

	assert.Equal(t, []string{"focus", "stop"}, calls)
}

func TestManager_SetIconSkipsRepeats(t *testing.T) {
	desktop := &fakeDesktop{}
	manager := New(desktop, Callbacks{})
	icon := fyne.NewStaticResource("icon.svg", []byte("<svg/>"))

	manager.SetIcon(icon)
	manager.SetIcon(icon)
	manager.SetIcon(nil)

	assert.Len(t, desktop.icons, 1)
}
