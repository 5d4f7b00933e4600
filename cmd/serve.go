package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/partchat/partchat/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the part catalog tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cat, err := buildCatalog(cfg)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "partchat MCP server started on stdio (parts=%d)\n", cat.Len())

		srv := mcpserver.NewServer(cat)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
