package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/penwyp/autotap/models"
)

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderConfig(),
		m.renderStatus(),
	}

	if m.showStats {
		sections = append(sections, m.renderStatsPanel())
	}
	if m.lastErr != nil {
		sections = append(sections, m.styles.StatusStopped.Render("Error: "+m.lastErr.Error()))
	}
	if !m.config.CompactMode {
		sections = append(sections, m.renderLegend())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderHeader renders the title bar
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("AutoTap")
	tagline := m.styles.Muted.Render("auto clicker")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", tagline)
}

// renderConfig renders the active click configuration
func (m Model) renderConfig() string {
	delay := m.snapshot.Delay
	if delay <= 0 {
		delay = models.DefaultClickDelay
	}
	rate := float64(time.Second) / float64(delay)

	parts := []string{
		m.styles.Label.Render("Delay: ") + m.styles.Value.Render(formatDelay(delay)),
		m.styles.Label.Render("Rate: ") + m.styles.Value.Render(fmt.Sprintf("%.1f cps", rate)),
		m.styles.Label.Render("Button: ") + m.styles.Value.Render(string(m.snapshot.Button)),
	}
	return strings.Join(parts, m.styles.Muted.Render("  |  "))
}

// renderStatus renders the state line with live counters
func (m Model) renderStatus() string {
	var status string
	switch m.snapshot.State {
	case models.StateRunning:
		status = m.styles.StatusRunning.Render("● Running")
		if m.config.ShowSpinner {
			status = m.spinner.View() + " " + status
		}
	case models.StatePaused:
		status = m.styles.StatusPaused.Render("⏸ Paused")
	case models.StateStopped:
		status = m.styles.StatusStopped.Render("■ Stopped")
	default:
		status = m.styles.StatusIdle.Render("○ Ready - press 1 to begin")
	}

	counters := m.styles.Muted.Render(fmt.Sprintf("  clicks: %d  recent: %.1f cps",
		m.snapshot.ClickCount, m.tracker.Rate()))

	return status + counters
}

// renderStatsPanel renders the statistics panel toggled by the stats
// hotkey
func (m Model) renderStatsPanel() string {
	if !m.stats.HasData() {
		return m.styles.Panel.Render(m.styles.Muted.Render("No statistics available - start clicking first"))
	}

	rows := []string{
		m.styles.Label.Render("Total Clicks: ") + m.styles.Value.Render(fmt.Sprintf("%d", m.stats.TotalClicks)),
		m.styles.Label.Render("Runtime:      ") + m.styles.Value.Render(fmt.Sprintf("%.1fs", m.stats.Elapsed.Seconds())),
		m.styles.Label.Render("Average CPS:  ") + m.styles.Value.Render(fmt.Sprintf("%.1f", m.stats.AverageCPS)),
		m.styles.Label.Render("Status:       ") + m.styles.Value.Render(m.stats.Status),
	}
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderLegend renders the hotkey legend
func (m Model) renderLegend() string {
	entries := []struct{ key, action string }{
		{"1", "start/stop"},
		{"2", "pause/resume"},
		{"3", "stats"},
		{"0", "exit"},
		{"Esc", "emergency stop"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, m.styles.KeyCap.Render(e.key)+m.styles.Legend.Render(" "+e.action))
	}
	legend := m.styles.Legend.Render("Global hotkeys:  ") + strings.Join(parts, m.styles.Legend.Render("   "))

	if m.showHelp {
		local := make([]string, 0, len(m.keys.ShortHelp()))
		for _, b := range m.keys.ShortHelp() {
			local = append(local, m.styles.KeyCap.Render(b.Help().Key)+m.styles.Legend.Render(" "+b.Help().Desc))
		}
		legend += "\n" + m.styles.Legend.Render("Dashboard keys:  ") + strings.Join(local, m.styles.Legend.Render("   "))
	}

	return legend
}

// formatDelay prints sub-second delays in milliseconds
func formatDelay(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
