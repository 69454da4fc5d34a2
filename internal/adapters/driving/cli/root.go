// Package cli implements the cobra command tree for needle.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/needle-cli/internal/logger"
)

// version is set via SetVersion before Execute.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "needle",
	Short: "Navigate nested configuration documents",
	Long: `needle flattens a nested configuration document (JSON, YAML, or TOML)
into a flat address space: every scalar leaf gets a unique path key such
as 'pipeline[0].params.model', and those keys can be listed, fetched,
filtered, and browsed interactively.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
