package qsc

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSearchErrorStatus(t *testing.T) {
	err := &StatusError{
		StatusCode: http.StatusServiceUnavailable,
		URL:        "https://qsc.example.com/search?q=notebook",
		Body:       strings.Repeat("x", 3000),
	}

	result := NormalizeSearchError(err)
	require.Equal(t, "Upstream HTTP error", result["error"])
	require.Equal(t, http.StatusServiceUnavailable, result["status_code"])
	require.Equal(t, "https://qsc.example.com/search?q=notebook", result["url"])
	require.Len(t, result["body"], 2000)
}

func TestNormalizeSearchErrorNetwork(t *testing.T) {
	result := NormalizeSearchError(&NetworkError{Err: errors.New("connection refused")})
	require.Equal(t, map[string]any{"error": "Network error: connection refused"}, result)
}

func TestNormalizeSearchErrorDecode(t *testing.T) {
	result := NormalizeSearchError(&DecodeError{Err: errors.New("unexpected end of JSON input")})
	require.Equal(t, map[string]any{"error": "Invalid JSON from upstream: unexpected end of JSON input"}, result)
}

func TestNormalizeSearchErrorUnexpected(t *testing.T) {
	result := NormalizeSearchError(errors.New("boom"))
	require.Len(t, result, 1)
	require.Contains(t, result["error"], "Unexpected error: boom")
}

func TestNormalizeDispatchSuccess(t *testing.T) {
	result := NormalizeDispatch("doc-1", &IngestResult{Status: http.StatusCreated, Body: "stored"}, nil)
	require.Equal(t, DispatchResult{ID: "doc-1", Status: http.StatusCreated, OK: true, Text: "stored"}, result)
}

func TestNormalizeDispatchStatusError(t *testing.T) {
	err := &StatusError{StatusCode: http.StatusBadRequest, URL: "https://qsc.example.com/ingest", Body: "rejected"}

	result := NormalizeDispatch("doc-1", nil, err)
	require.Equal(t, DispatchResult{ID: "doc-1", Status: http.StatusBadRequest, OK: false, Text: "rejected"}, result)
}

func TestNormalizeDispatchTransportFailure(t *testing.T) {
	result := NormalizeDispatch("doc-1", nil, &NetworkError{Err: errors.New("timeout")})
	require.Equal(t, DispatchResult{ID: "doc-1", Status: StatusTransportFailure, OK: false, Text: ""}, result)
}
