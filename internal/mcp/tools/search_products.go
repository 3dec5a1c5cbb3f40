package tools

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

// invalidQueryMessage is returned verbatim to callers for any missing, non-string,
// or blank query. Validation short-circuits before any network call.
const invalidQueryMessage = "Parameter 'q' must be a non-empty string."

// SearchClient abstracts the upstream search capability used by the tool.
type SearchClient interface {
	// Search proxies the query and returns the decoded upstream JSON verbatim.
	Search(ctx context.Context, query string) (any, error)
}

// SearchProductsTool implements the search_products MCP tool.
type SearchProductsTool struct {
	client SearchClient
	logger logSDK.Logger
}

// NewSearchProductsTool constructs a SearchProductsTool with the provided dependencies.
func NewSearchProductsTool(client SearchClient, logger logSDK.Logger) (*SearchProductsTool, error) {
	if client == nil {
		return nil, errors.New("search client is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SearchProductsTool{client: client, logger: logger}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SearchProductsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"search_products",
		mcp.WithDescription("Proxy a product search to Quasiris Search Cloud and return the upstream JSON."),
		mcp.WithString(
			"q",
			mcp.Required(),
			mcp.Description("The search query string (mapped to ?q=...)."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle validates the query, dispatches it upstream, and returns either the
// upstream JSON unchanged or a normalized error object. Upstream failures never
// escape as protocol errors.
func (t *SearchProductsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argumentsMap(req.Params.Arguments)

	raw, present := args["q"]
	query, isString := raw.(string)
	query = strings.TrimSpace(query)
	if !present || !isString || query == "" {
		return resultJSON(t.logger, map[string]any{"error": invalidQueryMessage})
	}

	start := time.Now().UTC()
	t.logger.Debug("search_products started", zap.Int("query_len", len(query)))

	body, err := t.client.Search(ctx, query)
	if err != nil {
		t.logger.Warn("search_products upstream failed", zap.Error(err), zap.Int("query_len", len(query)))
		return resultJSON(t.logger, qsc.NormalizeSearchError(err))
	}

	t.logger.Debug("search_products completed",
		zap.Int("query_len", len(query)),
		zap.Duration("duration", time.Since(start)),
	)

	return resultJSON(t.logger, body)
}
