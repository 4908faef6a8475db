package arg

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/ipc"
)

func TestPrintStatus(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printStatus(&out, ipc.Status{
		State:        "focus",
		Remaining:    -3,
		FocusTime:    3661,
		TotalTime:    7200,
		Running:      true,
		AlarmPlaying: true,
	})

	text := out.String()
	assert.Contains(t, text, "Focus")
	assert.Contains(t, text, "-00:03")
	assert.Contains(t, text, "1:01:01")
	assert.Contains(t, text, "2:00:00")
	assert.Contains(t, text, "yes")
}

func TestPrintEvent(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printEvent(&out, ipc.Event{Member: ipc.SignalStateChanged, State: "pre-break"})
	printEvent(&out, ipc.Event{Member: ipc.SignalTick, Seconds: 90})
	printEvent(&out, ipc.Event{Member: ipc.SignalAlarmChanged, Playing: true})
	printEvent(&out, ipc.Event{Member: "Unknown"})

	assert.Equal(t, "Time for a break\n01:30\nalarm ringing\n", out.String())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"status", "watch", "focus", "break", "reset", "stop-alarm", "reset-focus", "reset-total"} {
		assert.True(t, names[name], name)
	}
}
