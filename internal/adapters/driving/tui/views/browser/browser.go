// Package browser provides the document browsing view for the TUI.
package browser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/components/keytable"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/services"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

// View is the browser: a key input, a key/value table for the current
// Search, and a status bar. Submitting a key re-roots onto its
// subtree; the reserved ".." key pops back up, falling back to the
// top-level view at the root. Filter mode narrows the table to keys
// containing a substring.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.KeyInput
	table     *keytable.KeyTable
	statusbar *status.Bar

	// root is the top-level Search; stack holds the navigation path,
	// always with at least the root on it.
	root  *domain.Search
	stack []*domain.Search

	// filtering is true while the input edits a substring filter
	// instead of a key.
	filtering bool

	width  int
	height int
}

// NewView creates a browser over a top-level Search.
func NewView(s *styles.Styles, km *keymap.KeyMap, root *domain.Search) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewKeyInput(s),
		table:     keytable.NewKeyTable(s),
		statusbar: status.NewBar(s, km),
		root:      root,
		stack:     []*domain.Search{root},
		width:     80,
		height:    24,
	}
	v.refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// current returns the Search on top of the navigation stack.
func (v *View) current() *domain.Search {
	return v.stack[len(v.stack)-1]
}

// visible returns the Search the table should display, applying the
// filter when active.
func (v *View) visible() *domain.Search {
	if v.filtering && v.input.Value() != "" {
		return v.current().Find(v.input.Value())
	}
	return v.current()
}

// refresh re-fills the table and status bar from the current view.
func (v *View) refresh() {
	shown := v.visible()
	v.table.SetSearch(shown)
	v.statusbar.SetPrefix(v.current().Prefix())
	v.statusbar.SetKeyCount(v.table.Count())
	if v.filtering {
		v.statusbar.SetState(status.StateFiltered)
	} else {
		v.statusbar.SetState(status.StateBrowsing)
	}
}

// Update handles messages for the browser.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentReloaded:
		if msg.Err != nil {
			logger.Warn("document reload failed: %v", msg.Err)
			v.warn("reload failed: " + msg.Err.Error())
			return v, nil
		}
		// The navigation stack may no longer resolve against the new
		// tree, so browsing restarts at the root.
		v.root = domain.NewSearch(msg.Value)
		v.stack = []*domain.Search{v.root}
		v.filtering = false
		v.input.Reset()
		v.refresh()
		return v, nil

	case messages.ErrorOccurred:
		v.warn(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return v, cmd

	case key.Matches(msg, v.keymap.Descend):
		if v.filtering {
			// Enter in filter mode descends into the selected row.
			selected := v.table.SelectedKey()
			v.leaveFilter()
			if selected != "" {
				v.descend(selected)
			}
			return v, nil
		}
		entered := v.input.Value()
		if entered == "" {
			entered = v.table.SelectedKey()
		}
		v.input.Reset()
		if entered != "" {
			v.descend(entered)
		}
		return v, nil

	case key.Matches(msg, v.keymap.Ascend):
		v.ascend()
		return v, nil

	case key.Matches(msg, v.keymap.Filter):
		v.filtering = true
		v.input.Reset()
		v.input.SetLabel("Filter: ")
		v.input.SetPlaceholder("substring to match")
		v.refresh()
		return v, nil

	case key.Matches(msg, v.keymap.Clear):
		v.leaveFilter()
		return v, nil
	}

	// Everything else edits the input.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.filtering {
		v.refresh()
	}
	return v, cmd
}

// descend re-roots onto the subtree at key, or pops on the up token.
func (v *View) descend(entered string) {
	if entered == services.UpToken {
		v.ascend()
		return
	}
	sub, err := v.current().Subsearch(entered)
	if err != nil {
		v.warn(err.Error())
		return
	}
	v.stack = append(v.stack, sub)
	v.refresh()
}

// ascend pops the navigation stack, resetting to the root view when
// it empties.
func (v *View) ascend() {
	v.stack = v.stack[:len(v.stack)-1]
	if len(v.stack) == 0 {
		v.stack = []*domain.Search{v.root}
	}
	v.refresh()
}

// leaveFilter exits filter mode and restores the key prompt.
func (v *View) leaveFilter() {
	v.filtering = false
	v.input.Reset()
	v.input.SetLabel("Key: ")
	v.input.SetPlaceholder("Enter a key, '..' to go up")
	v.refresh()
}

// warn shows a transient message in the status bar.
func (v *View) warn(message string) {
	v.statusbar.SetState(status.StateWarning)
	v.statusbar.SetMessage(message)
}

// View renders the browser.
func (v *View) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		v.input.View(),
		"",
		v.table.View(),
		"",
		v.statusbar.View(),
	)
}

// SetDimensions resizes the view and its components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	tableHeight := height - 7
	if tableHeight < 3 {
		tableHeight = 3
	}
	v.table.SetDimensions(width, tableHeight)
}

// Current returns the Search on top of the stack (for testing).
func (v *View) Current() *domain.Search {
	return v.current()
}

// Depth returns the navigation stack depth (for testing).
func (v *View) Depth() int {
	return len(v.stack)
}

// Filtering returns whether filter mode is active (for testing).
func (v *View) Filtering() bool {
	return v.filtering
}
