// Package animation drives simple time based effects in the UI.
package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	LitDuration    time.Duration
	DimmedDuration time.Duration
}

// Engine alternates a lit and a dimmed frame until stopped.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(lit bool)
	cancel context.CancelFunc
}

// New creates a pulse engine. update must not block.
func New(config Config, update func(lit bool)) *Engine {
	return &Engine{
		config: config,
		update: update,
	}
}

// StartPulse restarts the pulse, beginning with a lit frame.
func (engine *Engine) StartPulse(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		for {
			if !engine.emit(runCtx, true) || !sleepWithContext(runCtx, engine.config.LitDuration) {
				return
			}
			if !engine.emit(runCtx, false) || !sleepWithContext(runCtx, engine.config.DimmedDuration) {
				return
			}
		}
	})
}

// Stop terminates any active pulse. No frame is emitted after Stop returns.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Running reports whether a pulse is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) emit(ctx context.Context, lit bool) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	engine.update(lit)
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
