package tools

import (
	"context"

	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool exposes the capabilities required by the MCP server registration lifecycle.
type Tool interface {
	Definition() mcp.Tool
	Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// argumentsMap extracts the request arguments as a map, returning nil when the
// payload has any other shape.
func argumentsMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

// resultJSON encodes payload as the tool's JSON result. Every tool call returns a
// well-formed result object, so encoding failures degrade to a tool error rather
// than a protocol error.
func resultJSON(logger logSDK.Logger, payload any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		logger.Error("encode tool result", zap.Error(err))
		return mcp.NewToolResultError("failed to encode tool result"), nil
	}
	return result, nil
}
