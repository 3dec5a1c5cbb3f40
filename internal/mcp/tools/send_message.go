package tools

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

// Ingestor abstracts the upstream document-ingestion capability used by the
// dispatch tools.
type Ingestor interface {
	Ingest(ctx context.Context, env qsc.Envelope) (*qsc.IngestResult, error)
}

// SendMessageTool implements the send_message MCP tool.
type SendMessageTool struct {
	ingestor Ingestor
	enricher *qsc.Enricher
	logger   logSDK.Logger
}

// NewSendMessageTool constructs a SendMessageTool with the provided dependencies.
func NewSendMessageTool(ingestor Ingestor, enricher *qsc.Enricher, logger logSDK.Logger) (*SendMessageTool, error) {
	if ingestor == nil {
		return nil, errors.New("ingestor is required")
	}
	if enricher == nil {
		return nil, errors.New("enricher is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &SendMessageTool{ingestor: ingestor, enricher: enricher, logger: logger}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *SendMessageTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"send_message",
		mcp.WithDescription("Store a message document in Quasiris Search Cloud. Each call creates a new document."),
		mcp.WithString(
			"message",
			mcp.Required(),
			mcp.Description("Message text to store upstream."),
		),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle enriches the message into an envelope, dispatches it, and returns the
// uniform dispatch result. A missing credential is a configuration error and is
// surfaced to the framework instead of being normalized.
func (t *SendMessageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	env := t.enricher.Enrich("", map[string]any{"message": message})

	res, err := t.ingestor.Ingest(ctx, env)
	if errors.Is(err, qsc.ErrMissingCredential) {
		t.logger.Error("send_message missing credential", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	if err != nil {
		t.logger.Warn("send_message upstream failed", zap.Error(err), zap.String("id", env.Header.ID))
	}

	return resultJSON(t.logger, qsc.NormalizeDispatch(env.Header.ID, res, err))
}
