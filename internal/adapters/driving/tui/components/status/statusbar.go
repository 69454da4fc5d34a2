// Package status provides the status bar for the TUI browser.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
)

// State represents the current browser state for display.
type State string

const (
	StateBrowsing State = "browsing"
	StateFiltered State = "filtered"
	StateWarning  State = "warning"
)

// Bar displays the current prefix, key count, warnings, and
// keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	prefix   string
	keyCount int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateBrowsing,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders position and state.
func (b *Bar) renderLeft() string {
	if b.state == StateWarning && b.message != "" {
		return b.styles.Warning.Render(b.message)
	}

	location := "/"
	if b.prefix != "" {
		location = b.prefix
	}
	text := fmt.Sprintf("%s · %d keys", location, b.keyCount)
	if b.state == StateFiltered {
		text += " (filtered)"
	}
	return b.styles.Normal.Render(text)
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	hints := make([]string, 0, 4)
	for _, binding := range b.keymap.ShortHelp() {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, "  "))
}

// SetState sets the display state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// SetMessage sets a transient warning message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// SetPrefix sets the current re-root prefix.
func (b *Bar) SetPrefix(prefix string) {
	b.prefix = prefix
}

// SetKeyCount sets the number of visible keys.
func (b *Bar) SetKeyCount(n int) {
	b.keyCount = n
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
