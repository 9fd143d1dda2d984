package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Tap        key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forState enables the bindings that make sense in the current run state,
// so the help line only lists what the player can do right now.
func (k KeyMap) forState(gameOver bool) KeyMap {
	k.Tap.SetEnabled(!gameOver)
	k.Restart.SetEnabled(gameOver)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Restart},
		{k.Screenshot, k.Quit},
	}
}
