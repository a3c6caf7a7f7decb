package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bobmcallan/youtube-mcp/internal/common"
	"github.com/bobmcallan/youtube-mcp/internal/config"
)

// maxResponseSize caps the proxied response body to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// MCPProxy issues HTTP requests against the upstream YouTube API on behalf of
// catalog tools. One instance is shared by every handler; it holds only
// immutable configuration, so concurrent tool calls need no coordination.
type MCPProxy struct {
	apiURL      string
	httpClient  *http.Client
	logger      *common.Logger
	apiKey      string
	accessToken string
}

// NewMCPProxy creates a new proxy targeting the given upstream API URL.
// Credentials from config are attached to every outbound request.
func NewMCPProxy(apiURL string, logger *common.Logger, cfg *config.Config) *MCPProxy {
	p := &MCPProxy{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
		logger: logger,
	}

	if cfg != nil {
		p.apiKey = cfg.Keys.APIKey
		p.accessToken = cfg.Keys.AccessToken
	}

	return p
}

// APIURL returns the upstream base URL this proxy targets.
func (p *MCPProxy) APIURL() string {
	return p.apiURL
}

// applyAuthHeaders attaches credentials to an outbound request. A token
// carried on the request context (from the caller's Authorization header)
// takes precedence over the configured access token.
func (p *MCPProxy) applyAuthHeaders(ctx context.Context, req *http.Request) {
	if p.apiKey != "" {
		req.Header.Set("X-Goog-Api-Key", p.apiKey)
	}

	token := p.accessToken
	if t, ok := AccessTokenFromContext(ctx); ok {
		token = t
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// do performs one upstream request. Non-success statuses become
// *UpstreamError; cancellation and deadline expiry become *CancelledError.
func (p *MCPProxy) do(ctx context.Context, method, path string, data interface{}) ([]byte, error) {
	p.logger.Debug().Str("method", method).Str("path", path).Msg("upstream request")

	var reqBody io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.apiURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	p.applyAuthHeaders(ctx, req)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			p.logger.Debug().
				Str("method", method).
				Str("path", path).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("upstream request cancelled")
			return nil, &CancelledError{Err: ctx.Err()}
		}
		p.logger.Error().
			Str("method", method).
			Str("path", path).
			Int64("duration_ms", duration.Milliseconds()).
			Str("error", err.Error()).
			Msg("upstream request failed")
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if ctx.Err() != nil {
			return nil, &CancelledError{Err: ctx.Err()}
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	p.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("upstream response")

	if resp.StatusCode >= 400 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: body}
	}

	return body, nil
}

func (p *MCPProxy) get(ctx context.Context, path string) ([]byte, error) {
	return p.do(ctx, http.MethodGet, path, nil)
}

func (p *MCPProxy) post(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return p.do(ctx, http.MethodPost, path, data)
}

func (p *MCPProxy) put(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return p.do(ctx, http.MethodPut, path, data)
}

func (p *MCPProxy) patch(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return p.do(ctx, http.MethodPatch, path, data)
}

func (p *MCPProxy) del(ctx context.Context, path string) ([]byte, error) {
	return p.do(ctx, http.MethodDelete, path, nil)
}
