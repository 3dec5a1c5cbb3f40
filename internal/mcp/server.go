package mcp

import (
	"context"
	"net/http"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"

	"github.com/tblsoft/mcp-perfect-poc/internal/mcp/tools"
	"github.com/tblsoft/mcp-perfect-poc/library/log"
	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

// Server wraps the MCP server state for the HTTP transport.
type Server struct {
	handler http.Handler
	logger  logSDK.Logger
}

// NewServer constructs a remote MCP server exposing the Quasiris proxy tools
// under a single streamable HTTP handler. The client and enricher are shared by
// all registered tools; per-tool enablement follows the settings.
func NewServer(client *qsc.Client, enricher *qsc.Enricher, settings ToolsSettings, logger logSDK.Logger) (*Server, error) {
	if client == nil {
		return nil, errors.New("qsc client is required")
	}
	if enricher == nil {
		return nil, errors.New("enricher is required")
	}
	if logger == nil {
		logger = log.Logger
	}

	hooks := newMCPHooks(logger.Named("mcp_hooks"))

	mcpServer := srv.NewMCPServer(
		"qsc-mcp",
		"1.0.0",
		srv.WithToolCapabilities(true),
		srv.WithInstructions("Use search_products to query Quasiris Search Cloud; send_message and add_to_cart store documents upstream."),
		srv.WithRecovery(),
		srv.WithHooks(hooks),
	)

	s := &Server{
		handler: srv.NewStreamableHTTPServer(mcpServer),
		logger:  logger.Named("mcp"),
	}

	register := func(name string, enabled bool, tool tools.Tool, err error) error {
		if err != nil {
			return errors.Wrapf(err, "create %s tool", name)
		}
		if !enabled {
			s.logger.Info("tool disabled by configuration", zap.String("tool", name))
			return nil
		}
		mcpServer.AddTool(tool.Definition(), tool.Handle)
		return nil
	}

	searchTool, err := tools.NewSearchProductsTool(client, logger.Named("search_products"))
	if err := register("search_products", settings.SearchProductsEnabled, searchTool, err); err != nil {
		return nil, err
	}

	sendTool, err := tools.NewSendMessageTool(client, enricher, logger.Named("send_message"))
	if err := register("send_message", settings.SendMessageEnabled, sendTool, err); err != nil {
		return nil, err
	}

	cartTool, err := tools.NewAddToCartTool(client, enricher, logger.Named("add_to_cart"))
	if err := register("add_to_cart", settings.AddToCartEnabled, cartTool, err); err != nil {
		return nil, err
	}

	greetTool, err := tools.NewGreetTool(logger.Named("greet"))
	if err := register("greet", settings.GreetEnabled, greetTool, err); err != nil {
		return nil, err
	}

	loadTool, err := tools.NewLoadJSONTool(logger.Named("load_json"))
	if err := register("load_json", settings.LoadJSONEnabled, loadTool, err); err != nil {
		return nil, err
	}

	return s, nil
}

// Handler returns the HTTP handler that should be mounted to serve MCP traffic.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func newMCPHooks(logger logSDK.Logger) *srv.Hooks {
	if logger == nil {
		return nil
	}

	hooks := &srv.Hooks{}

	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		logger.Debug("mcp request received", hookLogFields(ctx, id, method)...)
	})

	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		logger.Info("mcp request succeeded", hookLogFields(ctx, id, method)...)
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		fields := append(hookLogFields(ctx, id, method), zap.Error(err))
		logger.Error("mcp request failed", fields...)
	})

	return hooks
}

func hookLogFields(ctx context.Context, id any, method mcp.MCPMethod) []zap.Field {
	fields := []zap.Field{
		zap.Any("request_id", id),
		zap.String("method", string(method)),
	}

	if session := srv.ClientSessionFromContext(ctx); session != nil {
		fields = append(fields, zap.String("session_id", session.SessionID()))
	}

	return fields
}
