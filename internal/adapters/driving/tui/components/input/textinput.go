// Package input provides the key entry component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
)

// KeyInput wraps a bubbles textinput for entering path keys and
// substring filters.
type KeyInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewKeyInput creates a new key input component.
func NewKeyInput(s *styles.Styles) *KeyInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a key, '..' to go up"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &KeyInput{
		textinput: ti,
		styles:    s,
		label:     "Key: ",
		width:     50,
	}
}

// Init initialises the input.
func (k *KeyInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (k *KeyInput) Update(msg tea.Msg) (*KeyInput, tea.Cmd) {
	var cmd tea.Cmd
	k.textinput, cmd = k.textinput.Update(msg)
	return k, cmd
}

// View renders the input with its label.
func (k *KeyInput) View() string {
	label := k.styles.Title.Render(k.label)
	field := k.styles.InputField.Render(k.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (k *KeyInput) Value() string {
	return k.textinput.Value()
}

// SetLabel changes the prompt label (e.g. "Filter: " in filter mode).
func (k *KeyInput) SetLabel(label string) {
	k.label = label
}

// SetPlaceholder changes the placeholder text.
func (k *KeyInput) SetPlaceholder(text string) {
	k.textinput.Placeholder = text
}

// SetWidth sets the width of the input.
func (k *KeyInput) SetWidth(width int) {
	k.width = width
	inputWidth := width - len(k.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	k.textinput.Width = inputWidth
}

// Reset clears the input.
func (k *KeyInput) Reset() {
	k.textinput.Reset()
}
