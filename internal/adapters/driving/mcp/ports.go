package mcp

import (
	"errors"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// Ports bundles what the MCP server needs from the core.
type Ports struct {
	// Search is the top-level view over the document.
	Search *domain.Search

	// Document names the document being served, for the server
	// implementation info.
	Document string
}

// Validate checks that required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return errors.New("mcp: search is required")
	}
	return nil
}
