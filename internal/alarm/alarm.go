// Package alarm plays the audio cue at the end of a session.
package alarm

import (
	"io"
	"log/slog"

	"pomodoro/internal/core/observable"
)

// Player is the audio resource behind an Alarm.
type Player interface {
	// Rewind moves playback back to the start of the cue.
	Rewind()
	Play() error
	Pause() error
	// OnEnded registers fn to run when the cue finishes on its own.
	OnEnded(fn func())
}

// Alarm controls the end-of-session cue. Without a Player every
// operation is a no-op.
type Alarm struct {
	player    Player
	isPlaying *observable.Observable[bool]
	logger    *slog.Logger
}

// New creates an Alarm bound to player, which may be nil.
func New(player Player, logger *slog.Logger) *Alarm {
	if logger == nil {
		logger = slog.Default()
	}
	alarm := &Alarm{
		player:    player,
		isPlaying: observable.New(false),
		logger:    logger,
	}
	if player != nil {
		player.OnEnded(alarm.handleEnded)
	} else {
		logger.Warn("no alarm player bound, alarm is silent")
	}
	return alarm
}

// IsPlaying reports whether the cue is playing.
func (alarm *Alarm) IsPlaying() *observable.Observable[bool] {
	return alarm.isPlaying
}

// Bound reports whether a Player is attached.
func (alarm *Alarm) Bound() bool {
	return alarm.player != nil
}

// Play starts the cue from the beginning.
func (alarm *Alarm) Play() {
	if alarm.player == nil {
		return
	}
	alarm.isPlaying.Set(true)
	alarm.player.Rewind()
	if err := alarm.player.Play(); err != nil {
		alarm.logger.Warn("play alarm", "error", err)
	}
}

// Stop halts the cue and rewinds it.
func (alarm *Alarm) Stop() {
	if alarm.player == nil {
		return
	}
	alarm.isPlaying.Set(false)
	alarm.player.Rewind()
	if err := alarm.player.Pause(); err != nil {
		alarm.logger.Warn("stop alarm", "error", err)
	}
}

// Close releases the player if it holds resources.
func (alarm *Alarm) Close() error {
	if closer, ok := alarm.player.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (alarm *Alarm) handleEnded() {
	alarm.player.Rewind()
	alarm.isPlaying.Set(false)
}
