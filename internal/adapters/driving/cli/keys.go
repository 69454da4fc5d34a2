package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
)

var (
	keysJSON       bool
	keysMaxDepth   int
	keysFixedDepth int
)

var keysCmd = &cobra.Command{
	Use:   "keys [file]",
	Short: "List the flattened path keys of a document",
	Long: `Flattens the document and prints one line per scalar leaf,
'key = value', in document order. With --max-depth the walk stops at
the given depth and containers at the limit are listed as single keys.`,
	Args: cobra.ExactArgs(1),
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output keys as JSON")
	keysCmd.Flags().IntVar(&keysMaxDepth, "max-depth", -1, "truncate the walk at this depth")
	keysCmd.Flags().IntVar(&keysFixedDepth, "fixed-depth", -1, "only list keys at exactly this depth")
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	search, err := loadSearch(args[0], keysMaxDepth)
	if err != nil {
		return err
	}

	if keysFixedDepth >= 0 {
		search = search.FixedDepth(keysFixedDepth)
	}

	if keysJSON {
		return outputKeysJSON(cmd, search)
	}

	keys := search.FlatKeys()
	if len(keys) == 0 {
		cmd.Println("No keys.")
		return nil
	}
	cmd.Print(search.String())
	return nil
}

// keyEntry is the JSON shape of one flattened key.
type keyEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func outputKeysJSON(cmd *cobra.Command, search *domain.Search) error {
	keys := search.FlatKeys()
	entries := make([]keyEntry, 0, len(keys))
	for _, key := range keys {
		v, err := search.Get(key)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", key, err)
		}
		entries = append(entries, keyEntry{Key: key, Value: domain.Format(v)})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
