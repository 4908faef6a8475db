// Package interval exposes the configured focus and break lengths.
package interval

import (
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/observable"
)

// Provider holds the current Intervals as an observable value.
type Provider struct {
	interval *observable.Observable[model.Intervals]
}

// New creates a Provider with the given intervals.
func New(intervals model.Intervals) *Provider {
	return &Provider{interval: observable.New(intervals)}
}

// FocusTime returns the focus length in seconds.
func (provider *Provider) FocusTime() int {
	return provider.interval.Value().FocusSeconds()
}

// BreakTime returns the break length in seconds.
func (provider *Provider) BreakTime() int {
	return provider.interval.Value().BreakSeconds()
}

// Intervals returns the current intervals.
func (provider *Provider) Intervals() model.Intervals {
	return provider.interval.Value()
}

// Interval exposes the underlying observable.
func (provider *Provider) Interval() *observable.Observable[model.Intervals] {
	return provider.interval
}

// Set replaces the intervals and notifies subscribers, even when unchanged.
func (provider *Provider) Set(intervals model.Intervals) {
	provider.interval.Set(intervals)
}

// Subscribe registers fn for interval changes.
func (provider *Provider) Subscribe(fn func(model.Intervals)) observable.Subscription {
	return provider.interval.Subscribe(fn)
}

// Unsubscribe removes a subscription made with Subscribe.
func (provider *Provider) Unsubscribe(id observable.Subscription) {
	provider.interval.Unsubscribe(id)
}
