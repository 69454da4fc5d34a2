package driving

import "context"

// Navigator provides document browsing to external actors.
type Navigator interface {
	// Render displays the current view once.
	Render() error

	// Interactive runs the prompt/render loop until the input ends or
	// the context is cancelled. A key descends into the subtree, ".."
	// pops back to the previous view (resetting to the top-level view
	// at the root), and failed lookups re-prompt.
	Interactive(ctx context.Context) error
}
