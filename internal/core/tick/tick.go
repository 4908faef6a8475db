// Package tick provides the periodic tick source that drives the timer.
//
// A Source runs two goroutines while started: an emitter that reads the
// underlying ticker and queues ticks, and a dispatcher that delivers them
// one at a time to the registered listener. Emission keeps its cadence
// while the listener is busy; queued ticks are delivered in order once the
// listener returns.
package tick

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultPeriod is the interval between ticks.
const DefaultPeriod = time.Second

const queueSize = 64

// Ticker is the periodic mechanism behind a Source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every period.
type TickerFunc func(period time.Duration) Ticker

type systemTicker struct {
	ticker *time.Ticker
}

// SystemTicker returns a Ticker backed by time.Ticker.
func SystemTicker(period time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(period)}
}

func (t *systemTicker) C() <-chan time.Time { return t.ticker.C }
func (t *systemTicker) Stop()               { t.ticker.Stop() }

// Source emits ticks to a single listener.
type Source struct {
	mu         sync.Mutex
	period     time.Duration
	newTicker  TickerFunc
	listener   func()
	stopCh     chan struct{}
	running    bool
	terminated bool
	logger     *slog.Logger
}

// New creates a stopped Source. A nil newTicker means the host has no
// periodic mechanism: the Source is then a no-op and never ticks.
func New(period time.Duration, newTicker TickerFunc, logger *slog.Logger) *Source {
	if period <= 0 {
		period = DefaultPeriod
	}
	if logger == nil {
		logger = slog.Default()
	}
	if newTicker == nil {
		logger.Warn("tick source unavailable, ticks disabled")
	}
	return &Source{
		period:    period,
		newTicker: newTicker,
		logger:    logger,
	}
}

// Listen registers the listener, replacing any previous one.
func (source *Source) Listen(listener func()) {
	source.mu.Lock()
	source.listener = listener
	source.mu.Unlock()
}

// Start begins emitting ticks. It does nothing when already running,
// terminated, or unavailable.
func (source *Source) Start() {
	source.mu.Lock()
	defer source.mu.Unlock()
	if source.running || source.terminated || source.newTicker == nil {
		return
	}
	ticker := source.newTicker(source.period)
	if ticker == nil {
		return
	}
	source.running = true
	source.stopCh = make(chan struct{})
	queue := make(chan struct{}, queueSize)

	go source.emit(ticker, queue, source.stopCh)
	go source.dispatch(queue, source.stopCh)
	source.logger.Debug("tick source started", "period", source.period)
}

// Stop halts emission. A listener call already in progress completes.
func (source *Source) Stop() {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.stopLocked()
}

// Terminate stops the source permanently.
func (source *Source) Terminate() {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.stopLocked()
	source.terminated = true
	source.listener = nil
}

// Running reports whether ticks are being emitted.
func (source *Source) Running() bool {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.running
}

// Terminated reports whether Terminate has been called.
func (source *Source) Terminated() bool {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.terminated
}

func (source *Source) stopLocked() {
	if !source.running {
		return
	}
	close(source.stopCh)
	source.running = false
	source.logger.Debug("tick source stopped")
}

func (source *Source) emit(ticker Ticker, queue chan<- struct{}, stopCh <-chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			select {
			case queue <- struct{}{}:
			default:
				source.logger.Warn("tick dropped, listener is falling behind")
			}
		}
	}
}

func (source *Source) dispatch(queue <-chan struct{}, stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-queue:
			select {
			case <-stopCh:
				return
			default:
			}
			if listener := source.currentListener(); listener != nil {
				listener()
			}
		}
	}
}

func (source *Source) currentListener() func() {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.listener
}
