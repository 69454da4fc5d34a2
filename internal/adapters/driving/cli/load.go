package cli

import (
	"fmt"
	"os"

	"github.com/custodia-labs/needle-cli/internal/adapters/driven/decode"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

// loadValue reads and decodes the document at path.
func loadValue(path string) (domain.Value, error) {
	logger.Section("Document Load")
	logger.Debug("Path: %s", path)

	decoder, err := decode.ForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Debug("Read %d bytes", len(data))

	v, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return v, nil
}

// loadSearch decodes the document and flattens it.
// maxDepth < 0 means no depth limit.
func loadSearch(path string, maxDepth int) (*domain.Search, error) {
	v, err := loadValue(path)
	if err != nil {
		return nil, err
	}

	var search *domain.Search
	if maxDepth >= 0 {
		search = domain.NewSearchMaxDepth(v, maxDepth)
	} else {
		search = domain.NewSearch(v)
	}
	logger.Debug("Flattened %d keys", len(search.FlatKeys()))
	return search, nil
}
