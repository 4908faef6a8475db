package alarm

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

// DefaultSound is the freedesktop sound theme name used for the cue.
const DefaultSound = "alarm-clock-elapsed"

const (
	notificationsName      = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications"
	notificationClosed     = notificationsInterface + ".NotificationClosed"
)

// NotificationPlayer plays the cue as a desktop notification carrying a
// sound-name hint. The notification server plays the sound; closing the
// notification (by the user or on expiry) ends the cue.
type NotificationPlayer struct {
	conn    *dbus.Conn
	sound   string
	logger  *slog.Logger
	signals chan *dbus.Signal
	done    chan struct{}

	mu         sync.Mutex
	current    uint32
	generation uint64
	onEnded    func()
	closed     bool
}

// Lookup binds the notification server on the session bus. It returns nil
// when there is no session bus or no notification server, so callers get
// a silent alarm instead of an error.
func Lookup(sound string, logger *slog.Logger) Player {
	if logger == nil {
		logger = slog.Default()
	}
	player, err := newNotificationPlayer(sound, logger)
	if err != nil {
		logger.Warn("alarm sound unavailable", "error", err)
		return nil
	}
	return player
}

func newNotificationPlayer(sound string, logger *slog.Logger) (*NotificationPlayer, error) {
	if sound == "" {
		sound = DefaultSound
	}

	conn, err := dbus.SessionBusPrivate()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	if err := conn.Auth(nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if err := conn.Hello(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send hello: %w", err)
	}

	var hasOwner bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, notificationsName).Store(&hasOwner); err != nil {
		conn.Close()
		return nil, fmt.Errorf("query notification server: %w", err)
	}
	if !hasOwner {
		conn.Close()
		return nil, fmt.Errorf("no notification server on session bus")
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(notificationsPath),
		dbus.WithMatchInterface(notificationsInterface),
		dbus.WithMatchMember("NotificationClosed"),
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("add match failed: %w", err)
	}

	player := &NotificationPlayer{
		conn:    conn,
		sound:   sound,
		logger:  logger,
		signals: make(chan *dbus.Signal, 10),
		done:    make(chan struct{}),
	}
	conn.Signal(player.signals)
	go player.listen()
	return player, nil
}

// OnEnded registers the end-of-cue callback.
func (player *NotificationPlayer) OnEnded(fn func()) {
	player.mu.Lock()
	player.onEnded = fn
	player.mu.Unlock()
}

// Rewind withdraws the current notification so the next Play starts fresh.
func (player *NotificationPlayer) Rewind() {
	player.closeCurrent()
}

// Pause withdraws the current notification, silencing the cue.
func (player *NotificationPlayer) Pause() error {
	player.closeCurrent()
	return nil
}

// Play posts a new notification. The call does not wait for the reply.
func (player *NotificationPlayer) Play() error {
	object := player.conn.Object(notificationsName, notificationsPath)
	player.mu.Lock()
	generation := player.generation
	player.mu.Unlock()

	call := object.Go(notificationsInterface+".Notify", 0, make(chan *dbus.Call, 1),
		"Pomodoro",                // app_name
		uint32(0),                 // replaces_id
		"alarm-symbolic",          // app_icon
		"Time is up",              // summary
		"Pick your next session.", // body
		[]string{},                // actions
		map[string]dbus.Variant{
			"sound-name": dbus.MakeVariant(player.sound),
			"category":   dbus.MakeVariant("x-gnome.alarm"),
			"urgency":    dbus.MakeVariant(byte(2)),
		},
		int32(-1),
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	go player.awaitID(call, generation)
	return nil
}

// Close stops listening and closes the private bus connection.
func (player *NotificationPlayer) Close() error {
	player.mu.Lock()
	if player.closed {
		player.mu.Unlock()
		return nil
	}
	player.closed = true
	player.mu.Unlock()

	player.closeCurrent()
	close(player.done)
	player.conn.RemoveSignal(player.signals)
	return player.conn.Close()
}

func (player *NotificationPlayer) awaitID(call *dbus.Call, generation uint64) {
	reply := <-call.Done
	if reply.Err != nil {
		player.logger.Warn("notification failed", "error", reply.Err)
		return
	}
	var id uint32
	if err := reply.Store(&id); err != nil {
		player.logger.Warn("parse notification id", "error", err)
		return
	}
	player.mu.Lock()
	if generation != player.generation {
		// Rewound while the notification was in flight.
		player.mu.Unlock()
		player.closeID(id)
		return
	}
	player.current = id
	player.mu.Unlock()
}

func (player *NotificationPlayer) closeCurrent() {
	player.mu.Lock()
	id := player.current
	player.current = 0
	player.generation++
	player.mu.Unlock()
	player.closeID(id)
}

func (player *NotificationPlayer) closeID(id uint32) {
	if id == 0 {
		return
	}
	object := player.conn.Object(notificationsName, notificationsPath)
	object.Go(notificationsInterface+".CloseNotification", dbus.FlagNoReplyExpected, nil, id)
}

func (player *NotificationPlayer) listen() {
	for {
		select {
		case <-player.done:
			return
		case signal, ok := <-player.signals:
			if !ok {
				return
			}
			if signal.Name != notificationClosed || len(signal.Body) == 0 {
				continue
			}
			if id, ok := signal.Body[0].(uint32); ok {
				player.handleClosed(id)
			}
		}
	}
}

// handleClosed ends the cue when the closed notification is the current
// one. Notifications withdrawn by Rewind or Pause are no longer current.
func (player *NotificationPlayer) handleClosed(id uint32) {
	player.mu.Lock()
	if id == 0 || id != player.current {
		player.mu.Unlock()
		return
	}
	player.current = 0
	onEnded := player.onEnded
	player.mu.Unlock()

	if onEnded != nil {
		onEnded()
	}
}
