package tools

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/tblsoft/mcp-perfect-poc/library/log"
	"github.com/tblsoft/mcp-perfect-poc/library/qsc"
)

type ingestorFunc func(context.Context, qsc.Envelope) (*qsc.IngestResult, error)

func (f ingestorFunc) Ingest(ctx context.Context, env qsc.Envelope) (*qsc.IngestResult, error) {
	return f(ctx, env)
}

func TestSendMessageEnrichesAndDispatches(t *testing.T) {
	var captured []qsc.Envelope
	ingest := ingestorFunc(func(_ context.Context, env qsc.Envelope) (*qsc.IngestResult, error) {
		captured = append(captured, env)
		return &qsc.IngestResult{Status: http.StatusOK, Body: "stored"}, nil
	})

	tool := mustSendMessageTool(t, ingest)

	for range 2 {
		result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{"message": "hello"}))
		require.NoError(t, err)
		require.False(t, result.IsError)
	}

	require.Len(t, captured, 2)
	require.NotEqual(t, captured[0].Header.ID, captured[1].Header.ID)

	for _, env := range captured {
		require.Equal(t, "update", env.Header.Action)
		require.Equal(t, env.Header.ID, env.Payload["id"])
		require.Equal(t, "hello", env.Payload["message"])

		stamp, ok := env.Payload["timestamp"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339, stamp)
		require.NoError(t, err)
	}
}

func TestSendMessageReportsDispatchResult(t *testing.T) {
	tool := mustSendMessageTool(t, ingestorFunc(func(_ context.Context, env qsc.Envelope) (*qsc.IngestResult, error) {
		return &qsc.IngestResult{Status: http.StatusCreated, Body: "stored"}, nil
	}))

	result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{"message": "hello"}))
	require.NoError(t, err)

	payload := decodeResultJSON(t, result)
	require.Equal(t, float64(http.StatusCreated), payload["status"])
	require.Equal(t, true, payload["ok"])
	require.Equal(t, "stored", payload["text"])
	require.NotEmpty(t, payload["id"])
}

func TestSendMessageTransportFailureYieldsSafeDefaults(t *testing.T) {
	tool := mustSendMessageTool(t, ingestorFunc(func(context.Context, qsc.Envelope) (*qsc.IngestResult, error) {
		return nil, &qsc.NetworkError{Err: errors.New("connection refused")}
	}))

	result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{"message": "hello"}))
	require.NoError(t, err)

	payload := decodeResultJSON(t, result)
	require.Equal(t, float64(qsc.StatusTransportFailure), payload["status"])
	require.Equal(t, false, payload["ok"])
	require.Equal(t, "", payload["text"])
	require.NotEmpty(t, payload["id"])
}

func TestSendMessageMissingCredentialIsNotNormalized(t *testing.T) {
	tool := mustSendMessageTool(t, ingestorFunc(func(context.Context, qsc.Envelope) (*qsc.IngestResult, error) {
		return nil, errors.WithStack(qsc.ErrMissingCredential)
	}))

	result, err := tool.Handle(context.Background(), requestWithArguments(map[string]any{"message": "hello"}))
	require.Error(t, err)
	require.Nil(t, result)
	require.True(t, errors.Is(err, qsc.ErrMissingCredential))
}

func mustSendMessageTool(t *testing.T, ingest Ingestor) *SendMessageTool {
	t.Helper()

	enricher, err := qsc.NewEnricher()
	require.NoError(t, err)

	tool, err := NewSendMessageTool(ingest, enricher, log.Logger.Named("test_send_message"))
	require.NoError(t, err)
	return tool
}
