package model

import "time"

// Intervals contains the configured session lengths.
type Intervals struct {
	Focus time.Duration
	Break time.Duration
}

// FocusSeconds returns the focus length in whole seconds.
func (intervals Intervals) FocusSeconds() int {
	return int(intervals.Focus / time.Second)
}

// BreakSeconds returns the break length in whole seconds.
func (intervals Intervals) BreakSeconds() int {
	return int(intervals.Break / time.Second)
}
