package driven

import "github.com/custodia-labs/needle-cli/internal/core/domain"

// Device is the presentation boundary for interactive navigation.
// The core drives it through exactly two contracts: render the current
// view, and ask for the next key.
type Device interface {
	// Render displays the Search's keys and resolved values.
	Render(search *domain.Search) error

	// Query prompts for a key, showing the current re-root prefix.
	// It returns io.EOF when the input stream ends.
	Query(prefix string) (string, error)

	// Notify shows a transient message (e.g. a failed lookup) without
	// interrupting the prompt cycle.
	Notify(message string)
}
