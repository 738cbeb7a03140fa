package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/addonlint/internal/application"
	"github.com/abdidvp/addonlint/internal/domain"
)

// registerTools registers all addonlint MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ValidateService) {
	// 1. addonlint_validate
	s.AddTool(
		mcplib.NewTool("addonlint_validate",
			mcplib.WithDescription("Validate Stremio addon manifest JSON. Returns the outcome with per-field issues."),
			mcplib.WithString("manifest",
				mcplib.Required(),
				mcplib.Description("The manifest JSON text to validate"),
			),
		),
		handleValidate(svc),
	)

	// 2. addonlint_fetch
	s.AddTool(
		mcplib.NewTool("addonlint_fetch",
			mcplib.WithDescription("Fetch a manifest from a URL and validate it"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("The manifest URL to fetch"),
			),
		),
		handleFetch(svc),
	)

	// 3. addonlint_share_link
	s.AddTool(
		mcplib.NewTool("addonlint_share_link",
			mcplib.WithDescription("Produce a shareable link embedding the given manifest text"),
			mcplib.WithString("manifest",
				mcplib.Required(),
				mcplib.Description("The manifest text to embed"),
			),
		),
		handleShareLink(svc),
	)

	// 4. addonlint_decode_link
	s.AddTool(
		mcplib.NewTool("addonlint_decode_link",
			mcplib.WithDescription("Restore the manifest text embedded in a share link"),
			mcplib.WithString("link",
				mcplib.Required(),
				mcplib.Description("The share link to decode"),
			),
		),
		handleDecodeLink(svc),
	)
}

func handleValidate(svc *application.ValidateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		manifest, err := request.RequireString("manifest")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.ValidateText("mcp", domain.SourceText, manifest)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFetch(svc *application.ValidateService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.ValidateURL(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("fetch failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleShareLink(svc *application.ValidateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		manifest, err := request.RequireString("manifest")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		link, err := svc.ShareLink(manifest)
		if err != nil {
			return errorResult(fmt.Sprintf("encoding failed: %v", err)), nil
		}
		return textResult(link), nil
	}
}

func handleDecodeLink(svc *application.ValidateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		link, err := request.RequireString("link")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		text, err := svc.DecodeShareLink(link)
		if err != nil {
			return errorResult(fmt.Sprintf("decoding failed: %v", err)), nil
		}
		return textResult(text), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
