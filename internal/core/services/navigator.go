package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driving"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

// Ensure NavigatorService implements the interface.
var _ driving.Navigator = (*NavigatorService)(nil)

// UpToken is the reserved key that pops back to the previous view.
const UpToken = ".."

// NavigatorService drives a Device through the render/prompt cycle,
// maintaining a stack of Search views for descent and ascent.
type NavigatorService struct {
	root   *domain.Search
	device driven.Device
}

// NewNavigatorService creates a navigator over a top-level Search.
func NewNavigatorService(root *domain.Search, device driven.Device) *NavigatorService {
	return &NavigatorService{root: root, device: device}
}

// Render displays the current top-level view once.
func (n *NavigatorService) Render() error {
	return n.device.Render(n.root)
}

// Interactive runs the navigation loop. Each cycle renders the top of
// the stack and prompts for a key: ".." pops (falling back to the
// top-level view when the stack empties), any other key attempts a
// Subsearch. Lookup failures notify and re-prompt; the loop ends
// cleanly on end of input or context cancellation.
func (n *NavigatorService) Interactive(ctx context.Context) error {
	stack := []*domain.Search{n.root}

	for {
		if err := ctx.Err(); err != nil {
			logger.Debug("navigation cancelled: %v", err)
			return nil
		}

		current := stack[len(stack)-1]
		if err := n.device.Render(current); err != nil {
			return fmt.Errorf("rendering view: %w", err)
		}

		key, err := n.device.Query(current.Prefix())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// Interrupted reads end the session cleanly once the
			// context is cancelled.
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading key: %w", err)
		}

		switch key {
		case UpToken:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				stack = []*domain.Search{n.root}
			}
		case "":
			// Re-render on an empty answer.
		default:
			sub, err := current.Subsearch(key)
			if err != nil {
				logger.Debug("subsearch %q failed: %v", key, err)
				n.device.Notify(err.Error())
				continue
			}
			stack = append(stack, sub)
		}
	}
}
