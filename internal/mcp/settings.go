// Package mcp provides the MCP server and its tool registrations.
package mcp

import (
	gconfig "github.com/Laisky/go-config/v2"
)

// ToolsSettings captures runtime configuration for enabling or disabling individual MCP tools.
type ToolsSettings struct {
	SearchProductsEnabled bool
	SendMessageEnabled    bool
	AddToCartEnabled      bool
	GreetEnabled          bool
	LoadJSONEnabled       bool
}

// LoadToolsSettingsFromConfig reads the MCP tools configuration and returns a ToolsSettings instance.
// By default, all tools are enabled unless explicitly disabled in the configuration.
func LoadToolsSettingsFromConfig() ToolsSettings {
	return ToolsSettings{
		SearchProductsEnabled: boolFromConfig("settings.mcp.tools.search_products.enabled", true),
		SendMessageEnabled:    boolFromConfig("settings.mcp.tools.send_message.enabled", true),
		AddToCartEnabled:      boolFromConfig("settings.mcp.tools.add_to_cart.enabled", true),
		GreetEnabled:          boolFromConfig("settings.mcp.tools.greet.enabled", true),
		LoadJSONEnabled:       boolFromConfig("settings.mcp.tools.load_json.enabled", true),
	}
}

// boolFromConfig retrieves a boolean configuration value with a default fallback.
func boolFromConfig(key string, def bool) bool {
	value := gconfig.S.Get(key)
	switch v := value.(type) {
	case nil:
		return def
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch v {
		case "true", "True", "TRUE", "1", "yes", "Yes", "YES":
			return true
		case "false", "False", "FALSE", "0", "no", "No", "NO":
			return false
		default:
			return def
		}
	default:
		return def
	}
}
