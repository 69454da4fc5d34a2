// Package tui implements the full-screen document browser following
// the Elm architecture.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/views/browser"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// App is the TUI application. It implements tea.Model for use with
// Bubbletea and delegates everything but global keys to the browser
// view.
type App struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	browser *browser.View

	// title is shown as the terminal window title.
	title string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI application over a top-level Search.
// The title names the document being browsed.
func NewApp(root *domain.Search, title string) *App {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		styles:  s,
		keymap:  km,
		browser: browser.NewView(s, km, root),
		title:   title,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("needle - "+a.title),
		a.browser.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.browser, cmd = a.browser.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	a.browser, cmd = a.browser.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.browser.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunWith starts the TUI with a hook that receives the running
// program, used to inject messages from outside (e.g. watch reloads).
func (a *App) RunWith(hook func(p *tea.Program)) error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	if hook != nil {
		hook(p)
	}
	_, err := p.Run()
	return err
}

// Browser returns the browser view (for testing).
func (a *App) Browser() *browser.View {
	return a.browser
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browser.SetDimensions(width, height)
}
