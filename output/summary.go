package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/autotap/calculations"
	"github.com/penwyp/autotap/models"
)

// Summary is the final session report emitted when the program exits
type Summary struct {
	Button         string    `json:"button"`
	DelayMillis    float64   `json:"delay_ms"`
	TotalClicks    int64     `json:"total_clicks"`
	RuntimeSeconds float64   `json:"runtime_seconds"`
	AverageCPS     float64   `json:"average_cps"`
	StartedAt      time.Time `json:"started_at,omitempty"`
	EndedAt        time.Time `json:"ended_at"`
}

// BuildSummary derives the final report from the engine's last snapshot
func BuildSummary(snap models.Snapshot, endedAt time.Time) Summary {
	stats := calculations.Compute(snap)

	return Summary{
		Button:         snap.Button.String(),
		DelayMillis:    float64(snap.Delay) / float64(time.Millisecond),
		TotalClicks:    stats.TotalClicks,
		RuntimeSeconds: stats.Elapsed.Seconds(),
		AverageCPS:     stats.AverageCPS,
		StartedAt:      snap.StartedAt,
		EndedAt:        endedAt,
	}
}

// Text renders the summary for the terminal
func (s Summary) Text() string {
	var b strings.Builder

	b.WriteString("Session summary:\n")
	if s.TotalClicks == 0 {
		b.WriteString("  No clicks recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  Total Clicks: %d\n", s.TotalClicks)
	fmt.Fprintf(&b, "  Runtime:      %.1fs\n", s.RuntimeSeconds)
	fmt.Fprintf(&b, "  Average CPS:  %.1f\n", s.AverageCPS)
	fmt.Fprintf(&b, "  Button:       %s\n", s.Button)
	fmt.Fprintf(&b, "  Delay:        %.1fms\n", s.DelayMillis)

	return b.String()
}

// WriteJSON writes the summary to the given path as indented JSON
func WriteJSON(path string, s Summary) error {
	data, err := sonic.ConfigDefault.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", path, err)
	}
	return nil
}
