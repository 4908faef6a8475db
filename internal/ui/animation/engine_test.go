package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames struct {
	mu   sync.Mutex
	list []bool
}

func (f *frames) add(lit bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, lit)
}

func (f *frames) snapshot() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.list...)
}

func TestEngine_PulseAlternates(t *testing.T) {
	recorded := &frames{}
	engine := New(Config{LitDuration: time.Millisecond, DimmedDuration: time.Millisecond}, recorded.add)

	engine.StartPulse(context.Background())
	require.Eventually(t, func() bool { return len(recorded.snapshot()) >= 4 }, time.Second, time.Millisecond)
	engine.Stop()

	got := recorded.snapshot()
	for i, lit := range got {
		assert.Equal(t, i%2 == 0, lit, "frame %d", i)
	}
}

func TestEngine_NoFramesAfterStop(t *testing.T) {
	recorded := &frames{}
	engine := New(Config{LitDuration: time.Millisecond, DimmedDuration: time.Millisecond}, recorded.add)

	engine.StartPulse(context.Background())
	require.Eventually(t, func() bool { return len(recorded.snapshot()) >= 2 }, time.Second, time.Millisecond)
	engine.Stop()
	assert.False(t, engine.Running())

	count := len(recorded.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, recorded.snapshot(), count)
}

func TestEngine_ParentCancelStopsPulse(t *testing.T) {
	recorded := &frames{}
	engine := New(DefaultConfig(), recorded.add)

	ctx, cancel := context.WithCancel(context.Background())
	engine.StartPulse(ctx)
	assert.True(t, engine.Running())
	require.Eventually(t, func() bool { return len(recorded.snapshot()) == 1 }, time.Second, time.Millisecond)
	cancel()

	time.Sleep(DefaultConfig().LitDuration + 100*time.Millisecond)
	assert.Equal(t, []bool{true}, recorded.snapshot())
}
