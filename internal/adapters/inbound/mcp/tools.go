package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/featlint/featlint/internal/adapters/outbound/config"
	"github.com/featlint/featlint/internal/adapters/outbound/markdown"
	"github.com/featlint/featlint/internal/adapters/outbound/scanner"
	"github.com/featlint/featlint/internal/application"
)

// registerTools registers all featlint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. featlint_audit
	s.AddTool(
		mcplib.NewTool("featlint_audit",
			mcplib.WithDescription("Run the convention-compliance audit for a feature and return the full report as JSON"),
			mcplib.WithString("feature",
				mcplib.Required(),
				mcplib.Description("Name of the feature to audit"),
			),
		),
		handleAudit(projectPath),
	)

	// 2. featlint_list_features
	s.AddTool(
		mcplib.NewTool("featlint_list_features",
			mcplib.WithDescription("List the feature directories that can be audited"),
		),
		handleListFeatures(projectPath),
	)

	// 3. featlint_report
	s.AddTool(
		mcplib.NewTool("featlint_report",
			mcplib.WithDescription("Run the audit for a feature and return the rendered Markdown compliance report"),
			mcplib.WithString("feature",
				mcplib.Required(),
				mcplib.Description("Name of the feature to audit"),
			),
		),
		handleReport(projectPath),
	)
}

func newService() *application.AuditService {
	return application.NewAuditService(scanner.New(), config.New())
}

func handleAudit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		feature, err := request.RequireString("feature")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newService().AuditFeature(projectPath, feature)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListFeatures(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		features, err := newService().ListFeatures(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("listing features failed: %v", err)), nil
		}
		return jsonResult(features)
	}
}

func handleReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		feature, err := request.RequireString("feature")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newService().AuditFeature(projectPath, feature)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return textResult(markdown.Render(report)), nil
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
