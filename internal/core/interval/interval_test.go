package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
)

func TestProvider_ReportsSeconds(t *testing.T) {
	provider := New(model.Intervals{Focus: 25 * time.Minute, Break: 5 * time.Minute})

	assert.Equal(t, 1500, provider.FocusTime())
	assert.Equal(t, 300, provider.BreakTime())
}

func TestProvider_SetNotifiesSubscribers(t *testing.T) {
	provider := New(model.Intervals{Focus: time.Minute, Break: time.Minute})
	var got []model.Intervals
	id := provider.Subscribe(func(intervals model.Intervals) { got = append(got, intervals) })

	updated := model.Intervals{Focus: 2 * time.Minute, Break: 30 * time.Second}
	provider.Set(updated)
	provider.Set(updated)
	provider.Unsubscribe(id)
	provider.Set(model.Intervals{})

	assert.Equal(t, []model.Intervals{updated, updated}, got)
	assert.Equal(t, 0, provider.FocusTime())
}
