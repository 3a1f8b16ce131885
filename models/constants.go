package models

import "time"

// Click timing limits
const (
	// MinClickDelay is the floor for the interval between clicks.
	// Requested delays below this are clamped, not rejected.
	MinClickDelay = time.Millisecond

	// DefaultClickDelay is used when neither --delay nor --cps is given
	DefaultClickDelay = 100 * time.Millisecond
)

// UI timing
const (
	// DefaultRefreshRate drives the dashboard redraw tick
	DefaultRefreshRate = 250 * time.Millisecond
)

// Statistics
const (
	// RollingWindow is the sliding window used for the recent-CPS rate
	RollingWindow = 5 * time.Second
)

// EffectiveDelay resolves the configured delay and CPS into the interval
// the click loop actually uses. CPS > 0 overrides delay; the result is
// never below MinClickDelay.
func EffectiveDelay(delay time.Duration, cps float64) time.Duration {
	if cps > 0 {
		delay = time.Duration(float64(time.Second) / cps)
	}
	if delay < MinClickDelay {
		return MinClickDelay
	}
	return delay
}
