package mcp

import (
	"testing"

	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/stretchr/testify/require"

	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

func TestNewServerRequiresClient(t *testing.T) {
	enricher, err := qsc.NewEnricher()
	require.NoError(t, err)

	srv, err := NewServer(nil, enricher, ToolsSettings{}, glog.Shared)
	require.Nil(t, srv)
	require.Error(t, err)
}

func TestNewServerRequiresEnricher(t *testing.T) {
	srv, err := NewServer(qsc.NewClient(qsc.Config{}), nil, ToolsSettings{}, glog.Shared)
	require.Nil(t, srv)
	require.Error(t, err)
}

func TestNewServerExposesHandler(t *testing.T) {
	enricher, err := qsc.NewEnricher()
	require.NoError(t, err)

	srv, err := NewServer(qsc.NewClient(qsc.Config{}), enricher, LoadToolsSettingsFromConfig(), glog.Shared)
	require.NoError(t, err)
	require.NotNil(t, srv)
	require.NotNil(t, srv.Handler())
}

func TestLoadToolsSettingsDefaultsToEnabled(t *testing.T) {
	settings := LoadToolsSettingsFromConfig()
	require.True(t, settings.SearchProductsEnabled)
	require.True(t, settings.SendMessageEnabled)
	require.True(t, settings.AddToCartEnabled)
	require.True(t, settings.GreetEnabled)
	require.True(t, settings.LoadJSONEnabled)
}
