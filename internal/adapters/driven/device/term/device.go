package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
)

// Ensure Device implements the interface.
var _ driven.Device = (*Device)(nil)

// Device is a line-oriented terminal device: it renders a Search as a
// key/value table and prompts for the next key on a single line. It is
// the non-fullscreen alternative to the TUI browser.
type Device struct {
	out     io.Writer
	in      *bufio.Scanner
	header  lipgloss.Style
	warning lipgloss.Style
}

// NewDevice creates a Device reading keys from in and writing to out.
func NewDevice(out io.Writer, in io.Reader) *Device {
	return &Device{
		out:     out,
		in:      bufio.NewScanner(in),
		header:  lipgloss.NewStyle().Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
}

// Render implements driven.Device.
func (d *Device) Render(search *domain.Search) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return d.header
			}
			return lipgloss.NewStyle()
		}).
		Headers("Key", "Value")

	for _, key := range search.FlatKeys() {
		v, err := search.Get(key)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", key, err)
		}
		t.Row(key, domain.Format(v))
	}

	_, err := fmt.Fprintln(d.out, t.Render())
	return err
}

// Query implements driven.Device. It returns io.EOF when the input
// stream ends.
func (d *Device) Query(prefix string) (string, error) {
	if prefix != "" {
		fmt.Fprintf(d.out, "Key (%s): ", prefix)
	} else {
		fmt.Fprint(d.out, "Key: ")
	}
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.in.Text(), nil
}

// Notify implements driven.Device.
func (d *Device) Notify(message string) {
	fmt.Fprintln(d.out, d.warning.Render(message))
}
