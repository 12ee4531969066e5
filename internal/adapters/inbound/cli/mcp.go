package cli

import (
	"fmt"

	mcpadapter "github.com/riskgate/riskgate/internal/adapters/inbound/mcp"
	"github.com/riskgate/riskgate/internal/adapters/outbound/config"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Riskgate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Riskgate MCP server (stdio)",
		Long:  "Start the Riskgate MCP server using stdio transport. This lets AI assistants submit intake forms for evaluation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			s := mcpadapter.NewRiskgateMCPServer(settings)
			return server.ServeStdio(s)
		},
	}

	return cmd
}
