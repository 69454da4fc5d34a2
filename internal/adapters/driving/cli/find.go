package cli

import (
	"github.com/spf13/cobra"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [file] [substring]",
	Short: "List path keys containing a substring",
	Long: `Flattens the document and lists every key containing the given
substring anywhere in the key text, with its value.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output matches as JSON")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	search, err := loadSearch(args[0], -1)
	if err != nil {
		return err
	}

	matches := search.Find(args[1])

	if findJSON {
		return outputKeysJSON(cmd, matches)
	}

	if len(matches.FlatKeys()) == 0 {
		cmd.Println("No matches.")
		return nil
	}
	cmd.Print(matches.String())
	return nil
}
