package driven

import "github.com/custodia-labs/needle-cli/internal/core/domain"

// DocumentDecoder parses raw document bytes into a domain value tree.
// Implementations exist per format (JSON, YAML, TOML).
type DocumentDecoder interface {
	// Decode parses data into a Value tree. Decoders that know the
	// document's field order must preserve it.
	Decode(data []byte) (domain.Value, error)

	// Extensions lists the file extensions (with leading dot) this
	// decoder handles.
	Extensions() []string
}
