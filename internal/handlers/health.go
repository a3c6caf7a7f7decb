package handlers

import (
	"net/http"

	"github.com/bobmcallan/youtube-mcp/internal/common"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger    *common.Logger
	apiURL    string
	toolCount int
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger *common.Logger, apiURL string, toolCount int) *HealthHandler {
	return &HealthHandler{logger: logger, apiURL: apiURL, toolCount: toolCount}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"tools":   h.toolCount,
		"api_url": h.apiURL,
	})
}
