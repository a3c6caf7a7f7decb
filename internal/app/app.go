package app

import (
	"github.com/bobmcallan/youtube-mcp/internal/common"
	"github.com/bobmcallan/youtube-mcp/internal/config"
	"github.com/bobmcallan/youtube-mcp/internal/handlers"
	"github.com/bobmcallan/youtube-mcp/internal/mcp"
)

// catalogAdapter converts MCP catalog tools to their display form, with
// parameters summarized by requiredness.
func catalogAdapter(mcpHandler *mcp.Handler) func() []handlers.CatalogEntry {
	return func() []handlers.CatalogEntry {
		if mcpHandler == nil {
			return nil
		}
		catalog := mcpHandler.Catalog()
		entries := make([]handlers.CatalogEntry, len(catalog))
		for i, ct := range catalog {
			entry := handlers.CatalogEntry{
				Name:        ct.Name,
				Description: ct.Description,
				Method:      ct.Method,
				Path:        ct.Path,
			}
			for _, p := range ct.Params {
				if p.Required {
					entry.Required = append(entry.Required, p.Name)
				} else {
					entry.Optional = append(entry.Optional, p.Name)
				}
			}
			entries[i] = entry
		}
		return entries
	}
}

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// HTTP handlers
	MCPHandler     *mcp.Handler
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	CatalogHandler *handlers.CatalogHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.MCPHandler = mcp.NewHandler(a.Config, a.Logger)

	a.HealthHandler = handlers.NewHealthHandler(a.Logger, a.Config.API.URL, len(a.MCPHandler.Catalog()))
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.CatalogHandler = handlers.NewCatalogHandler(a.Logger, catalogAdapter(a.MCPHandler))

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
