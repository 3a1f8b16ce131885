package calculations

import (
	"time"

	"github.com/penwyp/autotap/models"
)

// ClickStats represents derived statistics for a clicking session
type ClickStats struct {
	TotalClicks int64         `json:"total_clicks"`
	Elapsed     time.Duration `json:"elapsed"`
	AverageCPS  float64       `json:"average_cps"`
	Status      string        `json:"status"`
}

// Compute derives statistics from an engine snapshot. The average rate
// is total clicks over session runtime; it is zero until any time has
// elapsed.
func Compute(snap models.Snapshot) ClickStats {
	elapsed := snap.Elapsed()

	var cps float64
	if secs := elapsed.Seconds(); secs > 0 {
		cps = float64(snap.ClickCount) / secs
	}

	return ClickStats{
		TotalClicks: snap.ClickCount,
		Elapsed:     elapsed,
		AverageCPS:  cps,
		Status:      snap.State.String(),
	}
}

// HasData reports whether there is anything worth displaying yet
func (s ClickStats) HasData() bool {
	return s.TotalClicks > 0
}
