package animation

import "time"

// DefaultConfig returns the pulse used for a ringing alarm.
func DefaultConfig() Config {
	return Config{
		LitDuration:    600 * time.Millisecond,
		DimmedDuration: 400 * time.Millisecond,
	}
}
