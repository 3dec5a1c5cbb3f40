package cmd

import (
	"context"
	"os"
	"strings"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/tblsoft/mcp-perfect-poc/internal/mcp"
	"github.com/tblsoft/mcp-perfect-poc/internal/web"
	"github.com/tblsoft/mcp-perfect-poc/library/log"
	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

// credentialEnvKey is the environment variable carrying the ingestion API token.
const credentialEnvKey = "QSC_API_TOKEN"

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `serve the Quasiris MCP tools over streamable HTTP`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runAPI()
	},
}

func runAPI() {
	cfg := qsc.Config{
		SearchURL: gconfig.Shared.GetString("settings.qsc.search_url"),
		IngestURL: gconfig.Shared.GetString("settings.qsc.ingest_url"),
		APIToken:  apiToken(),
	}
	if cfg.APIToken == "" {
		// search stays usable; ingestion tools fail at first use
		log.Logger.Warn("qsc api token is not configured")
	}

	client := qsc.NewClient(cfg)

	enricher, err := qsc.NewEnricher()
	if err != nil {
		log.Logger.Panic("create enricher", zap.Error(err))
	}

	mcpServer, err := mcp.NewServer(client, enricher, mcp.LoadToolsSettingsFromConfig(), log.Logger)
	if err != nil {
		log.Logger.Panic("create mcp server", zap.Error(err))
	}

	web.RunServer(gconfig.Shared.GetString("listen"), mcpServer.Handler())
}

// apiToken reads the ingestion credential once at startup, preferring the
// process environment over the configuration file.
func apiToken() string {
	if token := strings.TrimSpace(os.Getenv(credentialEnvKey)); token != "" {
		return token
	}
	return strings.TrimSpace(gconfig.Shared.GetString("settings.qsc.api_token"))
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
