package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/autotap/models"
)

func testSnapshot() models.Snapshot {
	now := time.Date(2025, 6, 1, 12, 0, 30, 0, time.UTC)
	return models.Snapshot{
		State:      models.StateStopped,
		ClickCount: 300,
		StartedAt:  now.Add(-30 * time.Second),
		Delay:      100 * time.Millisecond,
		Button:     models.ButtonLeft,
		Taken:      now,
	}
}

func TestBuildSummary(t *testing.T) {
	snap := testSnapshot()
	summary := BuildSummary(snap, snap.Taken)

	assert.Equal(t, int64(300), summary.TotalClicks)
	assert.InDelta(t, 30.0, summary.RuntimeSeconds, 0.001)
	assert.InDelta(t, 10.0, summary.AverageCPS, 0.001)
	assert.Equal(t, "left", summary.Button)
	assert.InDelta(t, 100.0, summary.DelayMillis, 0.001)
}

func TestSummary_Text(t *testing.T) {
	summary := BuildSummary(testSnapshot(), testSnapshot().Taken)
	text := summary.Text()

	assert.Contains(t, text, "Total Clicks: 300")
	assert.Contains(t, text, "Runtime:      30.0s")
	assert.Contains(t, text, "Average CPS:  10.0")
}

func TestSummary_Text_NoClicks(t *testing.T) {
	summary := BuildSummary(models.Snapshot{Button: models.ButtonLeft}, time.Now())

	assert.Contains(t, summary.Text(), "No clicks recorded")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	summary := BuildSummary(testSnapshot(), testSnapshot().Taken)

	require.NoError(t, WriteJSON(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Summary
	require.NoError(t, sonic.Unmarshal(data, &got))
	assert.Equal(t, summary.TotalClicks, got.TotalClicks)
	assert.Equal(t, summary.Button, got.Button)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "summary.json"), Summary{})
	assert.Error(t, err)
}
