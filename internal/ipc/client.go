package ipc

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Client calls the timer exported by a running instance.
type Client struct {
	conn   *dbus.Conn
	object dbus.BusObject
}

// Dial connects to the session bus.
func Dial() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an existing connection.
func NewClient(conn *dbus.Conn) *Client {
	return &Client{
		conn:   conn,
		object: conn.Object(ServiceName, dbus.ObjectPath(ObjectPath)),
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Call invokes a method that takes no arguments and returns nothing.
func (c *Client) Call(method string) error {
	if err := c.object.Call(InterfaceName+"."+method, 0).Err; err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	return nil
}

// Status fetches the current timer status.
func (c *Client) Status() (Status, error) {
	var (
		status                          Status
		remaining, focusTime, totalTime int32
	)
	err := c.object.Call(InterfaceName+".Status", 0).Store(
		&status.State, &remaining, &focusTime, &totalTime, &status.Running, &status.AlarmPlaying,
	)
	if err != nil {
		return Status{}, fmt.Errorf("call Status: %w", err)
	}
	status.Remaining = int(remaining)
	status.FocusTime = int(focusTime)
	status.TotalTime = int(totalTime)
	return status, nil
}

// Watch delivers timer signals to fn until ctx is done.
func (c *Client) Watch(ctx context.Context, fn func(Event)) error {
	if err := c.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(dbus.ObjectPath(ObjectPath)),
		dbus.WithMatchInterface(InterfaceName),
	); err != nil {
		return fmt.Errorf("add match failed: %w", err)
	}

	signals := make(chan *dbus.Signal, 16)
	c.conn.Signal(signals)
	defer c.conn.RemoveSignal(signals)

	for {
		select {
		case <-ctx.Done():
			return nil
		case signal, ok := <-signals:
			if !ok {
				return nil
			}
			if event, ok := DecodeSignal(signal); ok {
				fn(event)
			}
		}
	}
}

// DecodeSignal converts a bus signal from the timer into an Event.
func DecodeSignal(signal *dbus.Signal) (Event, bool) {
	if signal == nil || signal.Path != dbus.ObjectPath(ObjectPath) || len(signal.Body) == 0 {
		return Event{}, false
	}
	switch signal.Name {
	case InterfaceName + "." + SignalStateChanged:
		state, ok := signal.Body[0].(string)
		return Event{Member: SignalStateChanged, State: state}, ok
	case InterfaceName + "." + SignalTick:
		seconds, ok := signal.Body[0].(int32)
		return Event{Member: SignalTick, Seconds: int(seconds)}, ok
	case InterfaceName + "." + SignalAlarmChanged:
		playing, ok := signal.Body[0].(bool)
		return Event{Member: SignalAlarmChanged, Playing: playing}, ok
	}
	return Event{}, false
}
