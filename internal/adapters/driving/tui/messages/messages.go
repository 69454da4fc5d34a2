// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

// DocumentReloaded carries a freshly decoded document into the
// browser, typically after a watch event on the source file.
type DocumentReloaded struct {
	Value domain.Value
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit requests application shutdown.
type Quit struct{}
