package ipc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"pomodoro/internal/core/observable"
	"pomodoro/internal/core/pomodoro"
)

// TimerService is the object exported at ObjectPath.
type TimerService struct {
	Backend Backend
}

func (s *TimerService) Focus() *dbus.Error {
	s.Backend.Focus()
	return nil
}

func (s *TimerService) Break() *dbus.Error {
	s.Backend.Break()
	return nil
}

func (s *TimerService) Reset() *dbus.Error {
	s.Backend.Reset()
	return nil
}

func (s *TimerService) StopAlarm() *dbus.Error {
	s.Backend.StopAlarm()
	return nil
}

func (s *TimerService) ResetFocusTime() *dbus.Error {
	s.Backend.ResetFocusTime()
	return nil
}

func (s *TimerService) ResetTotalTime() *dbus.Error {
	s.Backend.ResetTotalTime()
	return nil
}

// Status returns state, remaining, focus and total seconds, the running
// flag and the alarm flag.
func (s *TimerService) Status() (string, int32, int32, int32, bool, bool, *dbus.Error) {
	snapshot := s.Backend.Snapshot()
	return string(snapshot.State),
		int32(snapshot.Remaining),
		int32(snapshot.FocusTime),
		int32(snapshot.TotalTime),
		snapshot.Running,
		s.Backend.AlarmPlaying(),
		nil
}

// Observables are the values whose changes are broadcast as signals.
type Observables struct {
	State     *observable.Observable[pomodoro.State]
	Remaining *observable.Observable[int]
	Alarm     *observable.Observable[bool]
}

// Serve claims ServiceName on conn, exports the timer and broadcasts
// changes until ctx is done.
func Serve(ctx context.Context, conn *dbus.Conn, backend Backend, watched Observables, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("failed to request name: %s already owned", ServiceName)
	}
	defer conn.ReleaseName(ServiceName)

	service := &TimerService{Backend: backend}
	if err := conn.Export(service, dbus.ObjectPath(ObjectPath), InterfaceName); err != nil {
		return fmt.Errorf("failed to export interface: %w", err)
	}
	defer conn.Export(nil, dbus.ObjectPath(ObjectPath), InterfaceName)

	emit := func(member string, value interface{}) {
		if err := conn.Emit(dbus.ObjectPath(ObjectPath), InterfaceName+"."+member, value); err != nil {
			logger.Debug("emit signal", "member", member, "error", err)
		}
	}

	stateSub := watched.State.Subscribe(func(state pomodoro.State) {
		emit(SignalStateChanged, string(state))
	})
	defer watched.State.Unsubscribe(stateSub)

	remainingSub := watched.Remaining.Subscribe(func(seconds int) {
		emit(SignalTick, int32(seconds))
	})
	defer watched.Remaining.Unsubscribe(remainingSub)

	alarmSub := watched.Alarm.Subscribe(func(playing bool) {
		emit(SignalAlarmChanged, playing)
	})
	defer watched.Alarm.Unsubscribe(alarmSub)

	logger.Info("control service exported", "name", ServiceName, "path", ObjectPath)
	<-ctx.Done()
	return nil
}
