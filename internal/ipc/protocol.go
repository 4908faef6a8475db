// Package ipc exposes the running timer on the session bus.
package ipc

import "pomodoro/internal/core/pomodoro"

const (
	ObjectPath    = "/dev/pomodoro/Timer"
	InterfaceName = "dev.pomodoro.Timer"
	ServiceName   = "dev.pomodoro"
)

// Signal members emitted on InterfaceName.
const (
	SignalStateChanged = "StateChanged"
	SignalTick         = "Tick"
	SignalAlarmChanged = "AlarmChanged"
)

// Backend is the application surface driven over the bus.
type Backend interface {
	Focus()
	Break()
	Reset()
	StopAlarm()
	ResetFocusTime()
	ResetTotalTime()
	Snapshot() pomodoro.Snapshot
	AlarmPlaying() bool
}

// Status is the reply of the Status method.
type Status struct {
	State        string
	Remaining    int
	FocusTime    int
	TotalTime    int
	Running      bool
	AlarmPlaying bool
}

// Event is a decoded signal.
type Event struct {
	Member  string
	State   string
	Seconds int
	Playing bool
}
