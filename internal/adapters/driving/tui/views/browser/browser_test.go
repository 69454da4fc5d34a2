package browser

import (
	"bytes"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

// Helper to build a small navigable tree.
func testRoot() *domain.Search {
	return domain.NewSearch(domain.Object{Fields: []domain.Field{
		{Name: "train", Child: domain.Object{Fields: []domain.Field{
			{Name: "batch_size", Child: domain.Scalar{Val: int64(64)}},
			{Name: "lr", Child: domain.Scalar{Val: 0.01}},
		}}},
		{Name: "valid", Child: domain.Object{Fields: []domain.Field{
			{Name: "batch_size", Child: domain.Scalar{Val: int64(128)}},
		}}},
	}})
}

// typeKeys feeds a string into the view as rune key messages.
func typeKeys(v *View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewView(t *testing.T) {
	root := testRoot()
	view := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), root)

	require.NotNil(t, view)
	assert.Same(t, root, view.Current())
	assert.Equal(t, 1, view.Depth())
	assert.False(t, view.Filtering())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	// Blink command from the input.
	assert.NotNil(t, view.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 120, view.width)
	assert.Equal(t, 40, view.height)
}

func TestView_Descend_TypedKey(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "train")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2, view.Depth())
	assert.Equal(t, "train", view.Current().Prefix())
	assert.Equal(t, []string{"batch_size", "lr"}, view.Current().FlatKeys())
	assert.Equal(t, "", view.input.Value())
}

func TestView_Descend_SelectedRow(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	// Empty input falls back to the highlighted row, which starts on
	// the first flattened key.
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2, view.Depth())
	assert.Equal(t, "train.batch_size", view.Current().Prefix())
}

func TestView_Descend_UnknownKey(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "missing")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, view.Depth())
}

func TestView_Descend_UpToken(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "train")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, view.Depth())

	typeKeys(view, "..")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, view.Depth())
	assert.Equal(t, "", view.Current().Prefix())
}

func TestView_Ascend(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "train")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, view.Depth())

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, 1, view.Depth())

	// Ascending at the root stays at the root.
	view.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, 1, view.Depth())
}

func TestView_Filter(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.True(t, view.Filtering())

	typeKeys(view, "batch")
	assert.Equal(t, 2, view.table.Count())

	typeKeys(view, "zzz")
	assert.Equal(t, 0, view.table.Count())
}

func TestView_Filter_Clear(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	typeKeys(view, "lr")
	require.Equal(t, 1, view.table.Count())

	view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, view.Filtering())
	assert.Equal(t, 3, view.table.Count())
}

func TestView_Filter_EnterDescends(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	view.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	typeKeys(view, "lr")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.Filtering())
	assert.Equal(t, 2, view.Depth())
	assert.Equal(t, "train.lr", view.Current().Prefix())
}

func TestView_Update_DocumentReloaded(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "train")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, view.Depth())

	reloaded := domain.Object{Fields: []domain.Field{
		{Name: "fresh", Child: domain.Scalar{Val: int64(1)}},
	}}
	view.Update(messages.DocumentReloaded{Value: reloaded})

	assert.Equal(t, 1, view.Depth())
	assert.Equal(t, []string{"fresh"}, view.Current().FlatKeys())
}

func TestView_Update_DocumentReloaded_Error(t *testing.T) {
	view := NewView(nil, nil, testRoot())

	typeKeys(view, "train")
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, view.Depth())

	view.Update(messages.DocumentReloaded{Err: errors.New("decode failed")})

	// A failed reload keeps the current tree and position.
	assert.Equal(t, 2, view.Depth())
}

func TestView_Update_DocumentReloaded_ErrorLogged(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	view := NewView(nil, nil, testRoot())
	view.Update(messages.DocumentReloaded{Err: errors.New("decode failed")})

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "decode failed")
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil, testRoot())
	view.SetDimensions(100, 30)

	rendered := view.View()
	assert.Contains(t, rendered, "Key")
	assert.Contains(t, rendered, "train.batch_size")
}
