package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/core/tick"
	"pomodoro/internal/ui/preferences"
)

type manualTicker struct {
	ch chan time.Time
}

func (ticker *manualTicker) C() <-chan time.Time { return ticker.ch }
func (ticker *manualTicker) Stop()               {}

type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (clock *manualClock) NewTicker(time.Duration) tick.Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &manualTicker{ch: make(chan time.Time)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *manualClock) tick() {
	clock.mu.Lock()
	ticker := clock.tickers[len(clock.tickers)-1]
	clock.mu.Unlock()
	ticker.ch <- time.Now()
}

type fakePlayer struct {
	mu    sync.Mutex
	plays int
	ended func()
}

func (player *fakePlayer) Rewind() {}
func (player *fakePlayer) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.plays++
	return nil
}
func (player *fakePlayer) Pause() error     { return nil }
func (player *fakePlayer) OnEnded(fn func()) { player.ended = fn }

func newTestApp(t *testing.T, options Options) *App {
	t.Helper()
	t.Cleanup(func() { constructed.Store(false) })
	application := New(options)
	t.Cleanup(func() { _ = application.Close() })
	return application
}

func TestNew_SecondConstructionPanics(t *testing.T) {
	newTestApp(t, Options{Settings: preferences.DefaultSettings()})

	assert.PanicsWithValue(t, ErrAlreadyConstructed, func() {
		New(Options{Settings: preferences.DefaultSettings()})
	})
}

func TestApp_FocusSessionRunsToAlarm(t *testing.T) {
	clock := &manualClock{}
	player := &fakePlayer{}
	application := newTestApp(t, Options{
		Settings: preferences.Settings{
			FocusDuration: 2 * time.Second,
			BreakDuration: time.Second,
		},
		Player:    player,
		NewTicker: clock.NewTicker,
	})

	application.Focus()
	require.True(t, application.Ticks.Running())
	for i := 0; i < 3; i++ {
		clock.tick()
	}

	require.Eventually(t, func() bool {
		return application.Timer.State().Value() == pomodoro.StatePreBreak
	}, time.Second, 5*time.Millisecond)
	assert.True(t, application.Alarm.IsPlaying().Value())

	application.Break()
	assert.False(t, application.Alarm.IsPlaying().Value())
	assert.Equal(t, pomodoro.StateBreak, application.Timer.State().Value())
	assert.Equal(t, 1, application.Timer.RemainingTime().Value())
}

func TestApp_ApplySettingsResets(t *testing.T) {
	clock := &manualClock{}
	application := newTestApp(t, Options{
		Settings:  preferences.DefaultSettings(),
		NewTicker: clock.NewTicker,
	})
	application.Break()

	unchanged := application.ApplySettings(preferences.DefaultSettings())
	assert.False(t, unchanged)
	assert.Equal(t, pomodoro.StateBreak, application.Timer.State().Value())

	updated := preferences.DefaultSettings()
	updated.FocusDuration = 40 * time.Minute
	assert.True(t, application.ApplySettings(updated))

	snapshot := application.Timer.Snapshot()
	assert.Equal(t, pomodoro.StatePreFocus, snapshot.State)
	assert.Equal(t, 2400, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.False(t, application.Ticks.Running())
	assert.Equal(t, updated, application.Settings())
}

func TestApp_HeadlessDegradesSilently(t *testing.T) {
	application := newTestApp(t, Options{Settings: preferences.DefaultSettings()})

	application.Focus()
	application.StopAlarm()

	assert.False(t, application.Ticks.Running())
	assert.True(t, application.Timer.IsTimerRunning())
	assert.False(t, application.Alarm.Bound())
}

func TestApp_CloseTerminatesTicks(t *testing.T) {
	clock := &manualClock{}
	application := newTestApp(t, Options{
		Settings:  preferences.DefaultSettings(),
		NewTicker: clock.NewTicker,
	})
	application.Focus()

	require.NoError(t, application.Close())
	require.NoError(t, application.Close())

	assert.True(t, application.Ticks.Terminated())
	application.Focus()
	assert.False(t, application.Ticks.Running())
}
