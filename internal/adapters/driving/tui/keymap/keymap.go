// Package keymap defines keybindings for the TUI browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the browser.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Descend submits the typed key and re-roots onto its subtree.
	Descend key.Binding

	// Ascend pops back to the previous view.
	Ascend key.Binding

	// Filter switches the input to substring filter mode.
	Filter key.Binding

	// Clear leaves filter mode / clears the input.
	Clear key.Binding

	// Up scrolls the key table up.
	Up key.Binding

	// Down scrolls the key table down.
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Descend: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "descend"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u/'..'", "up one level"),
		),
		Filter: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "filter keys"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
	}
}

// ShortHelp returns the hints shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Descend, k.Ascend, k.Filter, k.Quit}
}
