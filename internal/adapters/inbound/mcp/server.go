package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewFeatlintMCPServer creates a new MCP server with all featlint tools
// registered. The projectPath is the root directory of the audited
// codebase.
func NewFeatlintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"featlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
