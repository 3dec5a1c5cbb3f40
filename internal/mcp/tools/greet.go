package tools

import (
	"context"
	"fmt"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	mcp "github.com/mark3labs/mcp-go/mcp"
)

// GreetTool implements the greet MCP tool.
type GreetTool struct {
	logger logSDK.Logger
}

// NewGreetTool constructs a GreetTool.
func NewGreetTool(logger logSDK.Logger) (*GreetTool, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &GreetTool{logger: logger}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *GreetTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"greet",
		mcp.WithDescription("Return a friendly greeting for the given name."),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("Name to greet."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle produces the greeting.
func (t *GreetTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Hello, %s!", name)), nil
}
