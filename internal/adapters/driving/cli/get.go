package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [file] [key]",
	Short: "Resolve a path key to its value",
	Long: `Parses the key (e.g. 'pipeline[0].params.model') and walks the
document one step at a time. Fails when the key is malformed or does
not resolve.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	search, err := loadSearch(args[0], -1)
	if err != nil {
		return err
	}

	v, err := search.Get(args[1])
	if err != nil {
		return err
	}

	cmd.Println(domain.Format(v))
	return nil
}
