package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// Operational routes
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{
			"GET":  s.app.HealthHandler.ServeHTTP,
			"HEAD": s.app.HealthHandler.ServeHTTP,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": s.app.VersionHandler.ServeHTTP})
	})
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": s.app.CatalogHandler.ServeHTTP})
	})

	// 404 handler for everything else
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
