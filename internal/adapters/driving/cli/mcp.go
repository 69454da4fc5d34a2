package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/needle-cli/internal/logger"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp [file]",
	Short: "Serve the document over the Model Context Protocol",
	Long: `Flattens the document and exposes it to MCP clients as tools:
list_keys, get_value, find_keys, and subsearch_keys.

By default the server speaks over stdio; with --http it serves
streamable HTTP on the given address.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	search, err := loadSearch(args[0], -1)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   search,
		Document: filepath.Base(args[0]),
	})
	if err != nil {
		return err
	}

	ctx, stop := interruptContext()
	defer stop()

	if mcpHTTPAddr != "" {
		logger.Info("MCP server listening on %s", mcpHTTPAddr)
		return server.RunHTTP(ctx, mcpHTTPAddr)
	}
	return server.Run(ctx)
}
