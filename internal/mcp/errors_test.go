package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestUnknownToolError_Message(t *testing.T) {
	err := &UnknownToolError{Tool: "get_bogus"}
	if err.Error() != "unknown tool: get_bogus" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestInvalidParametersError_MissingOnly(t *testing.T) {
	err := &InvalidParametersError{Tool: "get_captions", Missing: []string{"videoId"}}
	want := "invalid parameters for get_captions (missing required: videoId)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInvalidParametersError_UnrecognizedOnly(t *testing.T) {
	err := &InvalidParametersError{Tool: "get_jobs", Unrecognized: []string{"bogus", "extra"}}
	want := "invalid parameters for get_jobs (unrecognized: bogus, extra)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInvalidParametersError_Both(t *testing.T) {
	err := &InvalidParametersError{
		Tool:         "get_captions",
		Missing:      []string{"videoId"},
		Unrecognized: []string{"bogus"},
	}
	want := "invalid parameters for get_captions (missing required: videoId; unrecognized: bogus)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestUpstreamError_GoogleEnvelope(t *testing.T) {
	err := &UpstreamError{
		Status: 403,
		Body:   []byte(`{"error":{"code":403,"message":"The request cannot be completed because you have exceeded your quota.","errors":[{"reason":"quotaExceeded"}]}}`),
	}
	msg := err.Error()
	if !strings.Contains(msg, "403") {
		t.Errorf("expected status in message, got %s", msg)
	}
	if !strings.Contains(msg, "exceeded your quota") {
		t.Errorf("expected envelope message extracted, got %s", msg)
	}
	if strings.Contains(msg, "errors") {
		t.Errorf("expected envelope noise excluded, got %s", msg)
	}
}

func TestUpstreamError_StringError(t *testing.T) {
	err := &UpstreamError{Status: 401, Body: []byte(`{"error":"invalid_token"}`)}
	if !strings.Contains(err.Error(), "invalid_token") {
		t.Errorf("expected string error extracted, got %s", err.Error())
	}
}

func TestUpstreamError_NonJSONBody(t *testing.T) {
	err := &UpstreamError{Status: 502, Body: []byte("  Bad Gateway  ")}
	want := "upstream returned 502: Bad Gateway"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestUpstreamError_LongBodyTruncated(t *testing.T) {
	err := &UpstreamError{Status: 500, Body: []byte(strings.Repeat("x", 2000))}
	msg := err.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("expected truncation marker, got tail %s", msg[len(msg)-10:])
	}
	if len(msg) > errorBodySnippetLen+64 {
		t.Errorf("expected message capped near %d chars, got %d", errorBodySnippetLen, len(msg))
	}
	if len(err.Body) != 2000 {
		t.Errorf("expected full body preserved on the struct, got %d bytes", len(err.Body))
	}
}

func TestMalformedResponseError_Message(t *testing.T) {
	err := &MalformedResponseError{Tool: "get_jobs", Body: []byte("<html>oops</html>")}
	msg := err.Error()
	if !strings.Contains(msg, "get_jobs") {
		t.Errorf("expected tool name in message, got %s", msg)
	}
	if !strings.Contains(msg, "<html>oops</html>") {
		t.Errorf("expected body snippet in message, got %s", msg)
	}
}

func TestCancelledError_Unwrap(t *testing.T) {
	err := &CancelledError{Err: context.Canceled}
	if !errors.Is(err, context.Canceled) {
		t.Error("expected errors.Is to match context.Canceled")
	}

	deadlineErr := &CancelledError{Err: context.DeadlineExceeded}
	if !errors.Is(deadlineErr, context.DeadlineExceeded) {
		t.Error("expected errors.Is to match context.DeadlineExceeded")
	}
}

func TestExtractUpstreamMessage_InvalidJSON(t *testing.T) {
	if msg := extractUpstreamMessage([]byte("not json")); msg != "" {
		t.Errorf("expected empty message for non-JSON body, got %q", msg)
	}
	if msg := extractUpstreamMessage([]byte(`{"unrelated":"shape"}`)); msg != "" {
		t.Errorf("expected empty message for body without error key, got %q", msg)
	}
}
