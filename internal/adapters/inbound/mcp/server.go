package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/riskgate/riskgate/internal/adapters/outbound/config"
)

// NewRiskgateMCPServer creates an MCP server with the Riskgate evaluation
// tools registered. Remote submissions use the endpoint in settings.
func NewRiskgateMCPServer(settings config.Settings) *server.MCPServer {
	s := server.NewMCPServer(
		"riskgate",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, settings)

	return s
}
