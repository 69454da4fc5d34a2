package decode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
)

// decoders holds the built-in decoders in lookup order.
var decoders = []driven.DocumentDecoder{
	JSON{},
	YAML{},
	TOML{},
}

// ForPath returns the decoder for the file's extension.
// Unknown extensions fail with domain.ErrUnsupportedFormat.
func ForPath(path string) (driven.DocumentDecoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, d := range decoders {
		for _, known := range d.Extensions() {
			if known == ext {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
}
