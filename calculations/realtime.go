package calculations

import (
	"sync"
	"time"

	"github.com/penwyp/autotap/models"
)

// sample is one observation of the cumulative click counter
type sample struct {
	count int64
	at    time.Time
}

// RateTracker computes the click rate over a sliding window from
// periodic counter observations. The dashboard feeds it one sample per
// refresh tick; the result answers "how fast is it clicking right now"
// rather than the whole-session average.
type RateTracker struct {
	window  time.Duration
	mu      sync.Mutex
	samples []sample
}

// NewRateTracker creates a tracker over the given window. A zero or
// negative window falls back to the default.
func NewRateTracker(window time.Duration) *RateTracker {
	if window <= 0 {
		window = models.RollingWindow
	}
	return &RateTracker{window: window}
}

// Observe records the cumulative click count at the given instant
func (r *RateTracker) Observe(count int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A counter that went backwards means a new session; start over
	if n := len(r.samples); n > 0 && count < r.samples[n-1].count {
		r.samples = r.samples[:0]
	}

	r.samples = append(r.samples, sample{count: count, at: at})
	r.evict(at)
}

// Rate returns clicks per second over the current window. At least two
// samples spanning some time are needed; otherwise the rate is zero.
func (r *RateTracker) Rate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.samples)
	if n < 2 {
		return 0
	}

	first, last := r.samples[0], r.samples[n-1]
	span := last.at.Sub(first.at).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(last.count-first.count) / span
}

// Reset discards all samples
func (r *RateTracker) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = r.samples[:0]
}

// evict drops samples older than the window. Caller holds the lock.
func (r *RateTracker) evict(now time.Time) {
	cutoff := now.Add(-r.window)
	i := 0
	for i < len(r.samples) && r.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		r.samples = append(r.samples[:0], r.samples[i:]...)
	}
}
