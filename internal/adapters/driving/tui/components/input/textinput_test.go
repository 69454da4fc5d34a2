package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/styles"
)

func TestNewKeyInput(t *testing.T) {
	ki := NewKeyInput(styles.DefaultStyles())

	require.NotNil(t, ki)
	assert.Equal(t, "", ki.Value())
}

func TestNewKeyInput_NilStyles(t *testing.T) {
	ki := NewKeyInput(nil)

	require.NotNil(t, ki)
	assert.NotNil(t, ki.styles)
}

func TestKeyInput_Update(t *testing.T) {
	ki := NewKeyInput(nil)

	ki.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("train")})

	assert.Equal(t, "train", ki.Value())
}

func TestKeyInput_Reset(t *testing.T) {
	ki := NewKeyInput(nil)
	ki.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("train")})

	ki.Reset()

	assert.Equal(t, "", ki.Value())
}

func TestKeyInput_View(t *testing.T) {
	ki := NewKeyInput(nil)
	ki.SetLabel("Filter: ")

	assert.Contains(t, ki.View(), "Filter:")
}
