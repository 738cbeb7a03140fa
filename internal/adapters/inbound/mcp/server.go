package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/addonlint/internal/application"
)

// NewAddonlintMCPServer creates a new MCP server with all addonlint
// tools and resources registered.
func NewAddonlintMCPServer(svc *application.ValidateService) *server.MCPServer {
	s := server.NewMCPServer(
		"addonlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s)

	return s
}
