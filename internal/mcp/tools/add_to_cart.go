package tools

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

// AddToCartTool implements the add_to_cart MCP tool.
type AddToCartTool struct {
	ingestor Ingestor
	enricher *qsc.Enricher
	logger   logSDK.Logger
}

// NewAddToCartTool constructs an AddToCartTool with the provided dependencies.
func NewAddToCartTool(ingestor Ingestor, enricher *qsc.Enricher, logger logSDK.Logger) (*AddToCartTool, error) {
	if ingestor == nil {
		return nil, errors.New("ingestor is required")
	}
	if enricher == nil {
		return nil, errors.New("enricher is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &AddToCartTool{ingestor: ingestor, enricher: enricher, logger: logger}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *AddToCartTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"add_to_cart",
		mcp.WithDescription("Record a cart addition event in Quasiris Search Cloud. Repeated calls are stored as distinct events."),
		mcp.WithString(
			"cartId",
			mcp.Required(),
			mcp.Description("Identifier of the cart."),
		),
		mcp.WithString(
			"customerId",
			mcp.Required(),
			mcp.Description("Identifier of the customer owning the cart."),
		),
		mcp.WithString(
			"sku",
			mcp.Required(),
			mcp.Description("SKU of the product added to the cart."),
		),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle enriches the cart event into an envelope, dispatches it, and returns the
// uniform dispatch result. Deduplication is deliberately absent: every call is a
// new event with a fresh identifier.
func (t *AddToCartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cartID, err := req.RequireString("cartId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	customerID, err := req.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sku, err := req.RequireString("sku")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	env := t.enricher.Enrich("", map[string]any{
		"cartId":     cartID,
		"customerId": customerID,
		"sku":        sku,
	})

	res, err := t.ingestor.Ingest(ctx, env)
	if errors.Is(err, qsc.ErrMissingCredential) {
		t.logger.Error("add_to_cart missing credential", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	if err != nil {
		t.logger.Warn("add_to_cart upstream failed", zap.Error(err), zap.String("id", env.Header.ID))
	}

	return resultJSON(t.logger, qsc.NormalizeDispatch(env.Header.ID, res, err))
}
