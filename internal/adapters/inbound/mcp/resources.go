package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/schema"
)

// registerResources registers all addonlint MCP resources on the given
// server.
func registerResources(s *server.MCPServer) {
	// addonlint://schema - the manifest JSON Schema
	s.AddResource(
		mcplib.NewResource(
			"addonlint://schema",
			"Manifest Schema",
			mcplib.WithResourceDescription("The JSON Schema addon manifests are validated against"),
			mcplib.WithMIMEType("application/schema+json"),
		),
		handleSchemaResource(),
	)
}

func handleSchemaResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/schema+json",
				Text:     schema.ManifestSchemaJSON,
			},
		}, nil
	}
}
