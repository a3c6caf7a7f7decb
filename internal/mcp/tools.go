package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// RegisterToolsFromCatalog registers MCP tools from catalog entries, routing
// each through the dispatcher.
func RegisterToolsFromCatalog(s *server.MCPServer, d *Dispatcher, catalog []CatalogTool) int {
	for _, ct := range catalog {
		tool := BuildMCPTool(ct)
		handler := GenericToolHandler(d, ct)
		s.AddTool(tool, handler)
	}
	return len(catalog)
}
