package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Dispatcher routes tool invocations to upstream endpoints using the
// descriptor table. Built once at startup from a validated catalog, immutable
// afterwards, safe for concurrent use.
type Dispatcher struct {
	proxy        *MCPProxy
	tools        map[string]CatalogTool
	order        []string
	contentOwner string
}

// NewDispatcher indexes a validated catalog for invocation. contentOwner
// fills parameters whose descriptor declares default_from
// "user_config.content_owner" when the caller omits them.
func NewDispatcher(proxy *MCPProxy, catalog []CatalogTool, contentOwner string) *Dispatcher {
	d := &Dispatcher{
		proxy:        proxy,
		tools:        make(map[string]CatalogTool, len(catalog)),
		order:        make([]string, 0, len(catalog)),
		contentOwner: contentOwner,
	}
	for _, ct := range catalog {
		d.tools[ct.Name] = ct
		d.order = append(d.order, ct.Name)
	}
	return d
}

// Lookup returns the descriptor registered under name.
func (d *Dispatcher) Lookup(name string) (CatalogTool, bool) {
	ct, ok := d.tools[name]
	return ct, ok
}

// Tools returns the catalog in registration order.
func (d *Dispatcher) Tools() []CatalogTool {
	out := make([]CatalogTool, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.tools[name])
	}
	return out
}

// Invoke validates args against the named descriptor, performs the upstream
// call, and returns the raw JSON response unmodified.
//
// Failures are classified: *UnknownToolError for names outside the catalog,
// *InvalidParametersError for missing/unrecognized arguments, *UpstreamError
// for non-success statuses, *MalformedResponseError for non-JSON success
// bodies, and *CancelledError when ctx is cancelled mid-flight.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]interface{}) (json.RawMessage, error) {
	ct, ok := d.tools[name]
	if !ok {
		return nil, &UnknownToolError{Tool: name}
	}

	recognized := make(map[string]bool, len(ct.Params))
	for _, param := range ct.Params {
		recognized[param.Name] = true
	}

	invalid := InvalidParametersError{Tool: name}
	for key := range args {
		if !recognized[key] {
			invalid.Unrecognized = append(invalid.Unrecognized, key)
		}
	}
	sort.Strings(invalid.Unrecognized)

	path := ct.Path
	queryParams := url.Values{}
	bodyParams := map[string]interface{}{}

	for _, param := range ct.Params {
		val := d.resolveParamValue(args, param)
		strVal := stringifyParam(val)
		if param.Required && strVal == "" {
			invalid.Missing = append(invalid.Missing, param.Name)
			continue
		}
		if val == nil {
			continue
		}
		switch param.In {
		case "path":
			if strVal != "" {
				path = strings.ReplaceAll(path, "{"+param.Name+"}", url.PathEscape(strVal))
			}
		case "query":
			if strVal != "" {
				queryParams.Set(param.Name, strVal)
			}
		case "body":
			bodyParams[param.Name] = val
		}
	}

	if len(invalid.Missing) > 0 || len(invalid.Unrecognized) > 0 {
		return nil, &invalid
	}

	if len(queryParams) > 0 {
		path += "?" + queryParams.Encode()
	}

	var respBody []byte
	var err error
	switch strings.ToUpper(ct.Method) {
	case "GET":
		respBody, err = d.proxy.get(ctx, path)
	case "POST":
		respBody, err = d.proxy.post(ctx, path, bodyOrNil(bodyParams))
	case "PUT":
		respBody, err = d.proxy.put(ctx, path, bodyOrNil(bodyParams))
	case "PATCH":
		respBody, err = d.proxy.patch(ctx, path, bodyOrNil(bodyParams))
	case "DELETE":
		respBody, err = d.proxy.del(ctx, path)
	default:
		return nil, fmt.Errorf("tool %s: unsupported method %s", name, ct.Method)
	}
	if err != nil {
		return nil, err
	}

	// Empty bodies (204-style responses) pass through as-is; nothing is
	// synthesized in their place.
	if len(respBody) > 0 && !json.Valid(respBody) {
		return nil, &MalformedResponseError{Tool: name, Body: respBody}
	}

	return json.RawMessage(respBody), nil
}

// GenericToolHandler adapts a catalog tool to an mcp-go handler backed by the
// dispatcher. Invocation errors become IsError results with the error text.
func GenericToolHandler(d *Dispatcher, ct CatalogTool) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		respBody, err := d.Invoke(ctx, ct.Name, r.GetArguments())
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(string(respBody))}}, nil
	}
}

// errorResult builds a CallToolResult carrying an error message.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}

// resolveParamValue extracts a parameter value from the call arguments,
// falling back to configured defaults when default_from is set. Empty
// strings are treated as absent.
func (d *Dispatcher) resolveParamValue(args map[string]interface{}, param CatalogParam) interface{} {
	if v, ok := args[param.Name]; ok && v != nil {
		if s, isStr := v.(string); !isStr || s != "" {
			return v
		}
	}

	if param.DefaultFrom != "" {
		if v := d.resolveDefaultValue(param.DefaultFrom); v != "" {
			return v
		}
	}

	return nil
}

// resolveDefaultValue resolves a default from operator configuration.
func (d *Dispatcher) resolveDefaultValue(defaultFrom string) string {
	switch defaultFrom {
	case "user_config.content_owner":
		return d.contentOwner
	default:
		return ""
	}
}

// stringifyParam renders a parameter value for use in a path or query string.
// Arrays are comma-joined, matching the upstream API's list convention.
func stringifyParam(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// bodyOrNil returns nil if the body map is empty, otherwise returns the map.
// This prevents sending an empty JSON object for methods that don't need a body.
func bodyOrNil(body map[string]interface{}) interface{} {
	if len(body) == 0 {
		return nil
	}
	return body
}
