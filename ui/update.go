package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/penwyp/autotap/calculations"
	"github.com/penwyp/autotap/clicker"
)

// Message types for the dashboard

// TickMsg is sent periodically to trigger a refresh
type TickMsg time.Time

// EngineEventMsg carries an engine event into the UI
type EngineEventMsg clicker.Event

// EngineStoppedMsg tells the UI the engine loop has exited
type EngineStoppedMsg struct {
	Err error
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		m.refresh(time.Time(msg))
		return m, tickCmd(m.config.RefreshRate)

	case EngineEventMsg:
		m.snapshot = msg.Snapshot
		switch msg.Kind {
		case clicker.EventStats:
			m.showStats = true
		case clicker.EventError:
			m.lastErr = msg.Err
		}
		m.stats = calculations.Compute(m.snapshot)
		return m, nil

	case EngineStoppedMsg:
		m.quitting = true
		if msg.Err != nil {
			m.lastErr = msg.Err
		}
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles the dashboard's local keys. Clicking controls
// arrive through the global hotkey hook, not here.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}
