// Package keytable provides the scrolling key/value table for the TUI.
package keytable

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// KeyTable displays a Search's keys and resolved values in a
// navigable table.
type KeyTable struct {
	table  table.Model
	styles *styles.Styles
	width  int
	height int
}

// NewKeyTable creates a new key table component.
func NewKeyTable(s *styles.Styles) *KeyTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = s.Header
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &KeyTable{
		table:  t,
		styles: s,
		width:  80,
		height: 10,
	}
}

// columns splits the available width between key and value.
func columns(width int) []table.Column {
	keyWidth := width * 2 / 5
	if keyWidth < 10 {
		keyWidth = 10
	}
	valueWidth := width - keyWidth - 4
	if valueWidth < 10 {
		valueWidth = 10
	}
	return []table.Column{
		{Title: "Key", Width: keyWidth},
		{Title: "Value", Width: valueWidth},
	}
}

// Init initialises the table.
func (k *KeyTable) Init() tea.Cmd {
	return nil
}

// Update handles table navigation messages.
func (k *KeyTable) Update(msg tea.Msg) (*KeyTable, tea.Cmd) {
	var cmd tea.Cmd
	k.table, cmd = k.table.Update(msg)
	return k, cmd
}

// View renders the table.
func (k *KeyTable) View() string {
	if len(k.table.Rows()) == 0 {
		return k.styles.Muted.Render("No keys")
	}
	return k.table.View()
}

// SetSearch fills the table from a Search view.
func (k *KeyTable) SetSearch(search *domain.Search) {
	keys := search.FlatKeys()
	rows := make([]table.Row, 0, len(keys))
	for _, key := range keys {
		v, err := search.Get(key)
		if err != nil {
			// Cache and tree are consistent by construction.
			continue
		}
		rows = append(rows, table.Row{key, domain.Format(v)})
	}
	k.table.SetRows(rows)
	k.table.GotoTop()
}

// SelectedKey returns the key of the highlighted row, or "".
func (k *KeyTable) SelectedKey() string {
	row := k.table.SelectedRow()
	if row == nil {
		return ""
	}
	return row[0]
}

// SetDimensions resizes the table.
func (k *KeyTable) SetDimensions(width, height int) {
	k.width = width
	k.height = height
	k.table.SetColumns(columns(width))
	k.table.SetHeight(height)
}

// Count returns the number of rows.
func (k *KeyTable) Count() int {
	return len(k.table.Rows())
}
