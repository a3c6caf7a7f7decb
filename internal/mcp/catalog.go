package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/youtube-mcp/internal/common"
)

// allowedMethods is the whitelist of HTTP methods for catalog tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// CatalogTool describes one upstream endpoint exposed as an MCP tool.
// The catalog is assembled once at startup and treated as immutable.
type CatalogTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Params      []CatalogParam `json:"params"`
}

// CatalogParam describes one parameter for a catalog tool.
type CatalogParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, number, boolean, array, object
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
	In          string `json:"in"`                     // path, query, body
	DefaultFrom string `json:"default_from,omitempty"` // e.g. "user_config.content_owner"
}

// ValidateCatalogTool validates a single catalog tool entry.
func ValidateCatalogTool(ct CatalogTool) error {
	if ct.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if ct.Method == "" {
		return fmt.Errorf("tool %q has empty method", ct.Name)
	}
	if !allowedMethods[strings.ToUpper(ct.Method)] {
		return fmt.Errorf("tool %q has unsupported method %q", ct.Name, ct.Method)
	}
	if ct.Path == "" {
		return fmt.Errorf("tool %q has empty path", ct.Name)
	}
	if !strings.HasPrefix(ct.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", ct.Name, ct.Path)
	}
	if strings.Contains(ct.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", ct.Name, ct.Path)
	}
	return nil
}

// ValidateCatalog filters and validates catalog entries, logging warnings for invalid or duplicate tools.
func ValidateCatalog(catalog []CatalogTool, logger *common.Logger) []CatalogTool {
	seen := make(map[string]bool, len(catalog))
	valid := make([]CatalogTool, 0, len(catalog))
	for _, ct := range catalog {
		if err := ValidateCatalogTool(ct); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("skipping invalid catalog tool")
			continue
		}
		if seen[ct.Name] {
			logger.Warn().Str("name", ct.Name).Msg("skipping duplicate catalog tool")
			continue
		}
		seen[ct.Name] = true
		valid = append(valid, ct)
	}
	return valid
}

// BuildMCPTool converts a CatalogTool into an mcp.Tool with the appropriate schema.
func BuildMCPTool(ct CatalogTool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(ct.Description)}
	for _, p := range ct.Params {
		if p.In == "path" || p.In == "query" || p.In == "body" {
			opt := buildParamOption(p)
			opts = append(opts, opt)
		}
	}
	return mcp.NewTool(ct.Name, opts...)
}

// buildParamOption maps a CatalogParam to the appropriate mcp-go tool option.
func buildParamOption(p CatalogParam) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case "number":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	case "array":
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		// string, object, or unknown — all passed as string
		return mcp.WithString(p.Name, opts...)
	}
}
