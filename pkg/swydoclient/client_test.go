package swydoclient_test

import (
	"testing"

	"github.com/mayple/swydo/pkg/swydo"
	"github.com/mayple/swydo/pkg/swydoclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := swydoclient.New(&swydo.Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := swydoclient.New(nil)
		require.ErrorIs(t, err, swydo.ErrConfigRequired)
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := swydoclient.New(&swydo.Config{})
		require.ErrorIs(t, err, swydo.ErrAPIKeyRequired)
	})

	t.Run("normalizes a trailing slash on the base URL", func(t *testing.T) {
		t.Parallel()

		config := &swydo.Config{
			APIKey:  "test-key",
			BaseURL: "https://api.example.com/v1/",
		}

		_, err := swydoclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v1", config.BaseURL)
	})

	t.Run("rejects a base URL without a scheme", func(t *testing.T) {
		t.Parallel()

		_, err := swydoclient.New(&swydo.Config{
			APIKey:  "test-key",
			BaseURL: "api.example.com",
		})
		require.ErrorIs(t, err, swydo.ErrInvalidBaseURL)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := swydoclient.NewWithAPIKey("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = swydoclient.NewWithAPIKey("")
	require.ErrorIs(t, err, swydo.ErrAPIKeyRequired)
}
