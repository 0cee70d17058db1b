package cli

import (
	mcpadapter "github.com/partsdesk/partsdesk/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the PartsDesk MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start PartsDesk MCP server (stdio)",
		Long:  "Start the PartsDesk MCP server using stdio transport. Assistants can search the saved catalog, payments and statistics; nothing is modified.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolvePath(path)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewPartsDeskMCPServer(dir))
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Store directory (defaults to current working directory)")

	return cmd
}
