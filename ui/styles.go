package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the dashboard
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

// Styles contains all styled components
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusIdle    lipgloss.Style
	StatusStopped lipgloss.Style

	Panel  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Legend lipgloss.Style
	KeyCap lipgloss.Style
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns a dark color theme
func DarkTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#6366F1"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Foreground: lipgloss.Color("#F9FAFB"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#374151"),
	}
}

// LightTheme returns a light color theme
func LightTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#4F46E5"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#D97706"),
		Error:      lipgloss.Color("#DC2626"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Border:     lipgloss.Color("#D1D5DB"),
	}
}

// ThemeByName resolves a configured theme name
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// NewStyles builds the style table for a theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		StatusRunning: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),
		StatusPaused: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),
		StatusIdle: lipgloss.NewStyle().
			Foreground(theme.Muted),
		StatusStopped: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),
		Legend: lipgloss.NewStyle().
			Foreground(theme.Muted),
		KeyCap: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),
	}
}
