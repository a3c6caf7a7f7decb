package mcp

import (
	"net/http"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/youtube-mcp/internal/common"
	"github.com/bobmcallan/youtube-mcp/internal/config"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	mcpServer  *mcpserver.MCPServer
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	dispatcher *Dispatcher
	catalog    []CatalogTool
}

// NewHandler creates an MCP handler exposing the YouTube endpoint catalog.
// The catalog is static: it is validated, indexed, and registered once here,
// and never changes for the life of the process.
func NewHandler(cfg *config.Config, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"youtube-mcp",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	proxy := NewMCPProxy(cfg.API.URL, logger, cfg)

	validated := ValidateCatalog(YouTubeCatalog(), logger)
	dispatcher := NewDispatcher(proxy, validated, cfg.User.ContentOwner)
	toolCount := RegisterToolsFromCatalog(mcpSrv, dispatcher, validated)

	// get_version is served locally on top of the proxied catalog.
	mcpSrv.AddTool(VersionTool(), VersionToolHandler(proxy))
	toolCount++

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", toolCount).
		Str("api_url", cfg.API.URL).
		Msg("MCP handler initialized")

	return &Handler{
		mcpServer:  mcpSrv,
		streamable: streamable,
		logger:     logger,
		dispatcher: dispatcher,
		catalog:    validated,
	}
}

// MCPServer returns the underlying MCP server, for serving over stdio.
func (h *Handler) MCPServer() *mcpserver.MCPServer {
	return h.mcpServer
}

// Catalog returns a copy of the validated tool catalog.
func (h *Handler) Catalog() []CatalogTool {
	result := make([]CatalogTool, len(h.catalog))
	copy(result, h.catalog)
	return result
}

// Dispatcher returns the dispatcher backing the registered tools.
func (h *Handler) Dispatcher() *Dispatcher {
	return h.dispatcher
}

// ServeHTTP lifts a caller-supplied bearer token into the request context so
// the proxy forwards it upstream, then delegates to the mcp-go
// StreamableHTTPServer. Token issuance, validation, and refresh belong to the
// credential provider, not this server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != "" {
			r = r.WithContext(WithAccessToken(r.Context(), token))
		}
	}

	h.streamable.ServeHTTP(w, r)
}
