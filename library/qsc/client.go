// Package qsc provides the client, result normalization, and document enrichment
// for the Quasiris Search Cloud search and ingestion APIs.
package qsc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/tblsoft/mcp-perfect-poc/library/log"
)

const (
	defaultSearchURL = "https://qsc.quasiris.de/api/v1/search/ab/products"
	defaultIngestURL = "https://qsc.quasiris.de/api/v1/data/bulk/ab/products"

	// Search tolerates slow upstream responses; ingestion stays short.
	searchTimeout = 10 * time.Second
	ingestTimeout = 5 * time.Second

	credentialHeader = "X-QSC-Token"
)

// Config carries the process-wide upstream settings. It is constructed once at
// startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	// SearchURL is the product search endpoint. Defaults to the Quasiris cloud URL.
	SearchURL string
	// IngestURL is the document ingestion endpoint. Defaults to the Quasiris cloud URL.
	IngestURL string
	// APIToken authenticates ingestion requests. It may be empty: search stays
	// usable, and Ingest fails with ErrMissingCredential at first use.
	APIToken string
}

// Option configures a Client instance.
type Option func(*Client)

// WithHTTPClient overrides the HTTP clients used for both endpoints, primarily for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.searchClient = client
			c.ingestClient = client
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client issues requests against the Quasiris Search Cloud APIs. Each call makes
// exactly one network attempt, follows redirects, and releases its connection on
// every exit path. Safe for concurrent use.
type Client struct {
	cfg          Config
	searchClient *http.Client
	ingestClient *http.Client
	logger       logSDK.Logger
}

// NewClient constructs a Client from the given configuration, filling in the
// default Quasiris endpoints when unset.
func NewClient(cfg Config, opts ...Option) *Client {
	if strings.TrimSpace(cfg.SearchURL) == "" {
		cfg.SearchURL = defaultSearchURL
	}
	if strings.TrimSpace(cfg.IngestURL) == "" {
		cfg.IngestURL = defaultIngestURL
	}

	client := &Client{
		cfg:          cfg,
		searchClient: &http.Client{Timeout: searchTimeout},
		ingestClient: &http.Client{Timeout: ingestTimeout},
		logger:       log.Logger.Named("qsc"),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// Search proxies the query to the search endpoint and returns the decoded
// upstream JSON verbatim. Failures are classified as *NetworkError,
// *StatusError, or *DecodeError for the normalizer to map.
func (c *Client) Search(ctx context.Context, query string) (any, error) {
	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create search request")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("outgoing search request",
		zap.String("url", reqURL),
		zap.Int("query_len", len(query)),
	)

	startAt := time.Now()
	resp, err := c.searchClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug("incoming search response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_len", len(body)),
		zap.Duration("cost", time.Since(startAt)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL, Body: string(body)}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return decoded, nil
}

// IngestResult summarises a successful ingestion response.
type IngestResult struct {
	Status int
	Body   string
}

// Ingest posts the envelope to the ingestion endpoint as a one-element JSON
// array with the credential header attached. An empty credential fails with
// ErrMissingCredential before any network call.
func (c *Client) Ingest(ctx context.Context, env Envelope) (*IngestResult, error) {
	if strings.TrimSpace(c.cfg.APIToken) == "" {
		return nil, errors.WithStack(ErrMissingCredential)
	}

	payload, err := json.Marshal([]Envelope{env})
	if err != nil {
		return nil, errors.Wrap(err, "marshal envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.IngestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "create ingest request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(credentialHeader, c.cfg.APIToken)

	c.logger.Debug("outgoing ingest request",
		zap.String("url", c.cfg.IngestURL),
		zap.String("id", env.Header.ID),
	)

	startAt := time.Now()
	resp, err := c.ingestClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug("incoming ingest response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("cost", time.Since(startAt)),
		zap.String("id", env.Header.ID),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: c.cfg.IngestURL, Body: string(body)}
	}

	return &IngestResult{Status: resp.StatusCode, Body: string(body)}, nil
}

// searchURL appends the encoded query parameter to the configured search endpoint.
func (c *Client) searchURL(query string) (string, error) {
	endpoint, err := url.Parse(c.cfg.SearchURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid search endpoint %q", c.cfg.SearchURL)
	}

	params := endpoint.Query()
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	return endpoint.String(), nil
}
