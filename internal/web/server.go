// Package web hosts the gin HTTP server that exposes the MCP endpoint.
package web

import (
	"net/http"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/tblsoft/mcp-perfect-poc/library/log"
)

var (
	server = gin.New()
)

// RunServer blocks serving HTTP on addr, routing MCP traffic to mcpHandler.
func RunServer(addr string, mcpHandler http.Handler) {
	server.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(log.Logger.Level().String()),
			ginMw.WithLogger(log.Logger.Named("gin")),
		),
	)
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := ginMw.EnableMetric(server); err != nil {
		log.Logger.Panic("enable metric server", zap.Error(err))
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	server.Any("/mcp", ginMw.FromStd(mcpHandler.ServeHTTP))
	server.Any("/mcp/*path", ginMw.FromStd(mcpHandler.ServeHTTP))

	log.Logger.Info("listening on http", zap.String("addr", addr))
	log.Logger.Panic("httpServer exit", zap.Error(server.Run(addr)))
}
