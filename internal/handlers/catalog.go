package handlers

import (
	"net/http"

	"github.com/bobmcallan/youtube-mcp/internal/common"
)

// CatalogEntry is the display form of one catalog tool, with parameters
// summarized by requiredness. MCP clients get the full schema over tools/list;
// this endpoint exists for operators and docs.
type CatalogEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Required    []string `json:"required,omitempty"`
	Optional    []string `json:"optional,omitempty"`
}

// CatalogHandler serves a read-only summary of the tool catalog.
type CatalogHandler struct {
	logger *common.Logger
	tools  func() []CatalogEntry
}

// NewCatalogHandler creates a catalog handler backed by a tool provider.
func NewCatalogHandler(logger *common.Logger, tools func() []CatalogEntry) *CatalogHandler {
	return &CatalogHandler{logger: logger, tools: tools}
}

// ServeHTTP handles GET /catalog.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	var entries []CatalogEntry
	if h.tools != nil {
		entries = h.tools()
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(entries),
		"tools": entries,
	})
}
