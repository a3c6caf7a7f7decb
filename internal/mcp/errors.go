package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// errorBodySnippetLen caps how much of an upstream body appears in error
// strings. The full body stays available on the error struct.
const errorBodySnippetLen = 512

// UnknownToolError reports an invocation of a tool name absent from the
// catalog.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

// InvalidParametersError reports arguments that fail descriptor validation:
// required parameters that are absent and/or supplied names the descriptor
// does not recognize. Both lists are collected in one pass so callers see
// every problem at once.
type InvalidParametersError struct {
	Tool         string
	Missing      []string
	Unrecognized []string
}

func (e *InvalidParametersError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unrecognized) > 0 {
		parts = append(parts, "unrecognized: "+strings.Join(e.Unrecognized, ", "))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("invalid parameters for %s", e.Tool)
	}
	return fmt.Sprintf("invalid parameters for %s (%s)", e.Tool, strings.Join(parts, "; "))
}

// UpstreamError reports a non-success status from the YouTube API. Status and
// the raw response body are preserved for the caller; Error() prefers the
// message from Google's error envelope when one is present.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	if msg := extractUpstreamMessage(e.Body); msg != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.Status, bodySnippet(e.Body))
}

// MalformedResponseError reports a success status whose body is not valid
// JSON. The body is preserved for diagnostics.
type MalformedResponseError struct {
	Tool string
	Body []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response for %s: not valid JSON: %s", e.Tool, bodySnippet(e.Body))
}

// CancelledError reports an invocation aborted by context cancellation or
// deadline expiry. Unwrap exposes the context cause so
// errors.Is(err, context.Canceled) holds.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("request cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// extractUpstreamMessage pulls a human-readable message out of an upstream
// error body. Handles Google's envelope ({"error": {"message": ...}}) and the
// plain {"error": "..."} shape.
func extractUpstreamMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return ""
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	var str string
	if err := json.Unmarshal(envelope.Error, &str); err == nil {
		return str
	}

	return ""
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > errorBodySnippetLen {
		return s[:errorBodySnippetLen] + "..."
	}
	return s
}
