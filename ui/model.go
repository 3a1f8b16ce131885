package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/penwyp/autotap/calculations"
	"github.com/penwyp/autotap/models"
)

// SnapshotProvider hands out copies of the live engine state
type SnapshotProvider interface {
	Snapshot() models.Snapshot
}

// Config holds UI configuration
type Config struct {
	RefreshRate time.Duration
	Theme       string
	ShowSpinner bool
	CompactMode bool

	// InitialDelay and InitialButton seed the display before the first
	// engine snapshot arrives
	InitialDelay  time.Duration
	InitialButton models.MouseButton
}

// DefaultConfig returns the default UI configuration
var DefaultConfig = Config{
	RefreshRate: models.DefaultRefreshRate,
	Theme:       "dark",
	ShowSpinner: true,
}

// Model represents the dashboard state
type Model struct {
	// Data
	engine   SnapshotProvider
	snapshot models.Snapshot
	stats    calculations.ClickStats
	tracker  *calculations.RateTracker

	// UI state
	width     int
	height    int
	showStats bool
	showHelp  bool
	quitting  bool
	lastErr   error

	// Utilities
	keys    KeyMap
	styles  Styles
	spinner spinner.Model
	config  Config
}

// NewModel creates a new dashboard model
func NewModel(cfg Config, engine SnapshotProvider) Model {
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = models.DefaultRefreshRate
	}

	styles := NewStyles(ThemeByName(cfg.Theme))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Subtitle

	m := Model{
		engine:  engine,
		tracker: calculations.NewRateTracker(models.RollingWindow),
		keys:    DefaultKeyMap(),
		styles:  styles,
		spinner: s,
		config:  cfg,
	}

	// Seed the display from config; the engine is only queried once the
	// program is running, via TickMsg. Querying it here would block until
	// the controller loop starts.
	seedDelay := cfg.InitialDelay
	if seedDelay < models.MinClickDelay {
		seedDelay = models.DefaultClickDelay
	}
	seedButton := cfg.InitialButton
	if !seedButton.Valid() {
		seedButton = models.ButtonLeft
	}
	m.snapshot = models.Snapshot{
		State:  models.StateIdle,
		Delay:  seedDelay,
		Button: seedButton,
	}
	m.stats = calculations.Compute(m.snapshot)

	return m
}

// Init returns the initial commands for the model. The immediate TickMsg
// pulls the first engine snapshot; subsequent ticks are scheduled by the
// TickMsg handler.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return TickMsg(time.Now()) },
	)
}

// refresh pulls a fresh snapshot and recomputes derived statistics
func (m *Model) refresh(now time.Time) {
	m.snapshot = m.engine.Snapshot()
	m.stats = calculations.Compute(m.snapshot)
	m.tracker.Observe(m.snapshot.ClickCount, now)
}

// tickCmd schedules the next refresh tick
func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
