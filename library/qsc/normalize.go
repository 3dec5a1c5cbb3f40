package qsc

import (
	"net/http"

	"github.com/Laisky/errors/v2"
)

// errorBodyLimit caps the upstream body included in search error objects.
const errorBodyLimit = 2000

// StatusTransportFailure marks a dispatch where the transport call itself failed
// and no upstream response exists.
const StatusTransportFailure = 0

// NormalizeSearchError converts any search failure into the uniform error
// object returned to callers. The three classified kinds map to their dedicated
// shapes; everything else falls through the explicit default arm so programming
// errors stay visible instead of being absorbed.
func NormalizeSearchError(err error) map[string]any {
	var statusErr *StatusError
	var netErr *NetworkError
	var decodeErr *DecodeError

	switch {
	case errors.As(err, &statusErr):
		return map[string]any{
			"error":       "Upstream HTTP error",
			"status_code": statusErr.StatusCode,
			"url":         statusErr.URL,
			"body":        truncate(statusErr.Body, errorBodyLimit),
		}
	case errors.As(err, &netErr):
		return map[string]any{"error": "Network error: " + netErr.Err.Error()}
	case errors.As(err, &decodeErr):
		return map[string]any{"error": "Invalid JSON from upstream: " + decodeErr.Err.Error()}
	default:
		return map[string]any{"error": "Unexpected error: " + err.Error()}
	}
}

// DispatchResult is the uniform envelope returned for document-send operations,
// success or failure, so callers can branch on OK and Status without inspecting
// the upstream JSON shape.
type DispatchResult struct {
	ID     string `json:"id"`
	Status int    `json:"status"`
	OK     bool   `json:"ok"`
	Text   string `json:"text"`
}

// NormalizeDispatch folds any ingestion outcome into a DispatchResult. When no
// response exists (transport failure) it synthesizes safe defaults instead of
// dereferencing a response that was never received.
func NormalizeDispatch(id string, res *IngestResult, err error) DispatchResult {
	if err == nil && res != nil {
		return DispatchResult{
			ID:     id,
			Status: res.Status,
			OK:     res.Status >= http.StatusOK && res.Status < http.StatusMultipleChoices,
			Text:   res.Body,
		}
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return DispatchResult{ID: id, Status: statusErr.StatusCode, OK: false, Text: statusErr.Body}
	}

	return DispatchResult{ID: id, Status: StatusTransportFailure, OK: false, Text: ""}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
