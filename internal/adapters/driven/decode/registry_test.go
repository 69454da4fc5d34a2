package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// TestForPath tests extension-based decoder selection
func TestForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected any
	}{
		{path: "config.json", expected: JSON{}},
		{path: "config.yaml", expected: YAML{}},
		{path: "config.yml", expected: YAML{}},
		{path: "config.toml", expected: TOML{}},
		{path: "/etc/app/CONFIG.JSON", expected: JSON{}},
	}

	for _, tt := range tests {
		d, err := ForPath(tt.path)
		require.NoError(t, err, "path %q", tt.path)
		assert.Equal(t, tt.expected, d, "path %q", tt.path)
	}
}

// TestForPath_Unsupported tests unknown extensions
func TestForPath_Unsupported(t *testing.T) {
	_, err := ForPath("config.ini")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = ForPath("noext")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
