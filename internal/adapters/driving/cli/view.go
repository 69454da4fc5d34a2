package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	termdevice "github.com/custodia-labs/needle-cli/internal/adapters/driven/device/term"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/needle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/services"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

var (
	viewPlain    bool
	viewWatch    bool
	viewMaxDepth int
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Browse a document interactively",
	Long: `Opens the document in the interactive browser.

The full-screen browser shows the flattened keys and their values;
typing a key and pressing enter descends into that subtree, '..' goes
back up, and ctrl+f filters keys by substring.

With --plain the browser is replaced by a line-oriented table/prompt
loop suitable for dumb terminals, ending cleanly on ctrl+d or
interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&viewPlain, "plain", false, "line-oriented prompt loop instead of the full-screen browser")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload the document when the file changes")
	viewCmd.Flags().IntVar(&viewMaxDepth, "max-depth", -1, "truncate the walk at this depth")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces out of the alt screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			if logger.IsVerbose() {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			}
		}
	}()

	path := args[0]
	search, err := loadSearch(path, viewMaxDepth)
	if err != nil {
		return err
	}

	if viewPlain {
		if viewWatch {
			return errors.New("--watch requires the full-screen browser")
		}
		return runPlainView(cmd, search)
	}

	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the browser needs a terminal; use --plain for piped output")
	}

	app := tui.NewApp(search, filepath.Base(path))
	if !viewWatch {
		return app.Run()
	}

	return app.RunWith(func(p *tea.Program) {
		go watchDocument(p, path)
	})
}

// runPlainView runs the line-oriented navigation loop until end of
// input or interrupt.
func runPlainView(cmd *cobra.Command, search *domain.Search) error {
	ctx, stop := interruptContext()
	defer stop()

	device := termdevice.NewDevice(cmd.OutOrStdout(), cmd.InOrStdin())
	navigator := services.NewNavigatorService(search, device)
	return navigator.Interactive(ctx)
}

// watchDocument re-decodes the file on every write event and feeds
// the result to the running browser.
func watchDocument(p *tea.Program, path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.Send(messages.ErrorOccurred{Err: fmt.Errorf("starting watcher: %w", err)})
		return
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file, which
	// drops a watch registered on the path itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		p.Send(messages.ErrorOccurred{Err: fmt.Errorf("watching %s: %w", path, err)})
		return
	}

	base := filepath.Base(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("watch event: %s", event)
			v, err := loadValue(path)
			p.Send(messages.DocumentReloaded{Value: v, Err: err})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.Send(messages.ErrorOccurred{Err: err})
		}
	}
}

// interruptContext returns a context cancelled on SIGINT.
func interruptContext() (ctx context.Context, stop func()) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
