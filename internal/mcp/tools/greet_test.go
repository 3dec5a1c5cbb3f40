package tools

import (
	"context"
	"testing"

	mcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/tblsoft/mcp-perfect-poc/library/log"
)

func TestGreetHandle(t *testing.T) {
	tool, err := NewGreetTool(log.Logger.Named("test_greet"))
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{"name": "Ada"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	require.Equal(t, "Hello, Ada!", textContent.Text)
}

func TestGreetRequiresName(t *testing.T) {
	tool, err := NewGreetTool(log.Logger.Named("test_greet"))
	require.NoError(t, err)

	result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}
