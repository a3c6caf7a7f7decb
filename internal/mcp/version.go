package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/youtube-mcp/internal/config"
)

// versionInfo holds the server's version fields.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
	APIURL  string `json:"api_url"`
}

// VersionTool returns the mcp.Tool definition for the get_version tool.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get youtube-mcp server version and the upstream API it targets. Use this to verify connectivity."),
	)
}

// VersionToolHandler returns a handler reporting build info and the
// configured upstream. No upstream call is made: the YouTube API has no
// version endpoint to ask.
func VersionToolHandler(proxy *MCPProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := versionInfo{
			Version: config.GetVersion(),
			Build:   config.GetBuild(),
			Commit:  config.GetGitCommit(),
			APIURL:  proxy.APIURL(),
		}

		out, err := json.Marshal(result)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}
