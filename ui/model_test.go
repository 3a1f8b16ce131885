package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/autotap/clicker"
	"github.com/penwyp/autotap/models"
)

// fakeProvider serves a canned snapshot
type fakeProvider struct {
	snap models.Snapshot
}

func (f *fakeProvider) Snapshot() models.Snapshot {
	return f.snap
}

func runningSnapshot() models.Snapshot {
	now := time.Now()
	return models.Snapshot{
		State:      models.StateRunning,
		ClickCount: 120,
		StartedAt:  now.Add(-12 * time.Second),
		Delay:      100 * time.Millisecond,
		Button:     models.ButtonLeft,
		Taken:      now,
	}
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(Config{}, &fakeProvider{snap: runningSnapshot()})

	assert.Equal(t, models.DefaultRefreshRate, m.config.RefreshRate)
	assert.Equal(t, models.StateIdle, m.snapshot.State)
	assert.Equal(t, models.DefaultClickDelay, m.snapshot.Delay)
	assert.Equal(t, models.ButtonLeft, m.snapshot.Button)
	assert.Zero(t, m.snapshot.ClickCount, "engine is not queried at construction")
	assert.False(t, m.showStats)
}

func TestNewModel_SeededFromConfig(t *testing.T) {
	m := NewModel(Config{
		InitialDelay:  20 * time.Millisecond,
		InitialButton: models.ButtonMiddle,
	}, &fakeProvider{})

	assert.Equal(t, 20*time.Millisecond, m.snapshot.Delay)
	assert.Equal(t, models.ButtonMiddle, m.snapshot.Button)
}

// blockingProvider stands in for an engine whose controller loop has
// not started yet: any snapshot request would hang forever
type blockingProvider struct{}

func (blockingProvider) Snapshot() models.Snapshot {
	select {}
}

func TestNewModel_DoesNotQueryEngine(t *testing.T) {
	done := make(chan struct{})
	go func() {
		NewModel(DefaultConfig, blockingProvider{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("NewModel blocked on an engine snapshot")
	}
}

func TestModel_TickRefreshesSnapshot(t *testing.T) {
	provider := &fakeProvider{snap: runningSnapshot()}
	m := NewModel(DefaultConfig, provider)

	provider.snap.ClickCount = 500
	updated, cmd := m.Update(TickMsg(time.Now()))

	model := updated.(Model)
	assert.Equal(t, int64(500), model.snapshot.ClickCount)
	assert.NotNil(t, cmd, "tick must reschedule itself")
}

func TestModel_StatsEventOpensPanel(t *testing.T) {
	m := NewModel(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	updated, _ := m.Update(EngineEventMsg(clicker.Event{
		Kind:     clicker.EventStats,
		Snapshot: runningSnapshot(),
	}))

	model := updated.(Model)
	assert.True(t, model.showStats)
	view := model.View()
	assert.Contains(t, view, "Total Clicks")
	assert.Contains(t, view, "120")
}

func TestModel_ErrorEventShown(t *testing.T) {
	m := NewModel(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	updated, _ := m.Update(EngineEventMsg(clicker.Event{
		Kind:     clicker.EventError,
		Snapshot: runningSnapshot(),
		Err:      errors.New("injection denied"),
	}))

	assert.Contains(t, updated.(Model).View(), "injection denied")
}

func TestModel_EngineStoppedQuits(t *testing.T) {
	m := NewModel(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	updated, cmd := m.Update(EngineStoppedMsg{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.(Model).View(), "quitting model renders nothing")
}

func TestModel_LocalKeys(t *testing.T) {
	m := NewModel(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	// 's' toggles the stats panel
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.True(t, updated.(Model).showStats)

	// 'q' quits
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, updated.(Model).quitting)
}

func TestModel_DigitHotkeysNotBoundLocally(t *testing.T) {
	m := NewModel(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	// global hotkeys pass through the dashboard untouched so the hook
	// layer stays the single owner of clicking control
	for _, r := range []rune{'1', '2', '3', '0'} {
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		assert.Nil(t, cmd)
		assert.False(t, updated.(Model).quitting)
	}
}

func TestModel_ViewShowsStatus(t *testing.T) {
	snap := runningSnapshot()
	m := NewModel(DefaultConfig, &fakeProvider{snap: snap})

	// the engine state appears once the first tick has pulled a snapshot
	refreshed, _ := m.Update(TickMsg(time.Now()))
	m = refreshed.(Model)

	view := m.View()
	assert.Contains(t, view, "AutoTap")
	assert.Contains(t, view, "Running")
	assert.Contains(t, view, "start/stop")

	// paused state
	snap.State = models.StatePaused
	updated, _ := m.Update(EngineEventMsg(clicker.Event{Kind: clicker.EventState, Snapshot: snap}))
	assert.Contains(t, updated.(Model).View(), "Paused")
}
