package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mayple/swydo/internal/client"
	"github.com/mayple/swydo/pkg/swydo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&swydo.Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.NotNil(t, apiClient)
		assert.NotNil(t, apiClient.Teams())
		assert.NotNil(t, apiClient.Users())
		assert.NotNil(t, apiClient.BrandTemplates())
		assert.NotNil(t, apiClient.ReportTemplates())
		assert.NotNil(t, apiClient.Connections())
		assert.NotNil(t, apiClient.Clients())
		assert.NotNil(t, apiClient.DataSources())
		assert.NotNil(t, apiClient.Reports())
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, swydo.ErrConfigRequired)
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&swydo.Config{})
		require.ErrorIs(t, err, swydo.ErrAPIKeyRequired)
	})
}

func TestClientRetriesThrottledCalls(t *testing.T) {
	t.Parallel()

	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": "TOO_MANY_REQUESTS"}`))

			return
		}

		_, _ = w.Write([]byte(`{"id": "team-1", "name": "Acme"}`))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&swydo.Config{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		RetryWaitBase: time.Millisecond,
		RetryBudget:   time.Second,
	})
	require.NoError(t, err)

	team, err := apiClient.Teams().Get(context.Background(), "team-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", team.Name)
	assert.Equal(t, 3, calls)
}

func TestClientDisableRetrySingleCall(t *testing.T) {
	t.Parallel()

	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "TOO_MANY_REQUESTS"}`))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&swydo.Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		DisableRetry: true,
	})
	require.NoError(t, err)

	_, err = apiClient.Teams().Get(context.Background(), "team-1")
	require.Error(t, err)
	assert.True(t, swydo.IsThrottled(err))
	assert.Equal(t, 1, calls)
}
