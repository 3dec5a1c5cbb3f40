package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"
)

// LoadJSONTool implements the load_json MCP tool.
type LoadJSONTool struct {
	logger logSDK.Logger
}

// NewLoadJSONTool constructs a LoadJSONTool.
func NewLoadJSONTool(logger logSDK.Logger) (*LoadJSONTool, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &LoadJSONTool{logger: logger}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *LoadJSONTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"load_json",
		mcp.WithDescription("Load and return the JSON contents of a local file."),
		mcp.WithString(
			"filename",
			mcp.Required(),
			mcp.Description("Path to a JSON file."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle reads and parses the file, returning either the parsed JSON or an
// error object. Filesystem and parse failures never escape as protocol errors.
func (t *LoadJSONTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return resultJSON(t.logger, map[string]any{"error": fmt.Sprintf("File not found: %s", filename)})
		}
		t.logger.Warn("load_json read failed", zap.Error(err), zap.String("filename", filename))
		return resultJSON(t.logger, map[string]any{"error": err.Error()})
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return resultJSON(t.logger, map[string]any{"error": err.Error()})
	}

	return resultJSON(t.logger, decoded)
}
