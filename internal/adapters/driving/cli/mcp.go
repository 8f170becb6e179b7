package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tecy/internal/core/services"
)

// Port range scanned by --auto-port.
const (
	mcpPortRangeStart = 8765
	mcpPortRangeEnd   = 8865
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can clean
files and text with tecy.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, or --auto-port to pick the
first free port from 8765.

Tools:
  clean_file  - clean a file and write ~/.tecy/<name>.txt
  clean_text  - clean a block of text and return it

Examples:
  # Stdio mode (default)
  tecy mcp serve

  # HTTP mode
  tecy mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "tecy": {
        "command": "/path/to/tecy",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("auto-port", false, "serve HTTP on the first free port from 8765")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if cleanerService == nil {
		return errors.New("cleaner service not configured")
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	autoPort, err := cmd.Flags().GetBool("auto-port")
	if err != nil {
		return fmt.Errorf("getting auto-port flag: %w", err)
	}

	if autoPort && port == 0 {
		port, err = services.FindAvailablePort("localhost", mcpPortRangeStart, mcpPortRangeEnd)
		if err != nil {
			return fmt.Errorf("finding a free port: %w", err)
		}
	}

	ports := &mcp.Ports{
		Cleaner:  cleanerService,
		History:  historyService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
