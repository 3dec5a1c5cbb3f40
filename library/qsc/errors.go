package qsc

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// ErrMissingCredential reports that no ingestion API token was configured for the
// process. It is a configuration precondition, not a per-call failure: callers must
// not convert it into a dispatch result.
var ErrMissingCredential = errors.New("qsc api token is not configured")

// StatusError reports an upstream response with a non-2xx status code. It carries
// the response body so callers can surface it for diagnosis.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// NetworkError wraps a transport-level failure: DNS resolution, refused
// connection, or timeout. No upstream response exists when it occurs.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to parse an upstream body as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid json from upstream: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
