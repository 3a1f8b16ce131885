package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the dashboard's local keyboard bindings. The clicking
// controls (1/2/3/0/Esc) are deliberately absent here: they are global
// hotkeys handled by the hotkeys package, so binding them locally too
// would fire them twice whenever the terminal has focus.
type KeyMap struct {
	Quit  key.Binding
	Stats key.Binding
	Help  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle stats panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stats, k.Help, k.Quit}
}

// FullHelp returns all binding groups
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Stats, k.Help, k.Quit},
	}
}
