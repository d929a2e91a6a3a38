package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mayple/swydo/pkg/swydo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsCreate(t *testing.T) {
	t.Parallel()
	t.Run("posts the payload and decodes the answer", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/clients", r.URL.Path)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Acme", payload["name"])
			assert.Equal(t, "a@acme.test", payload["email"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "client-1", "name": "Acme", "email": "a@acme.test"}`))
		}))

		account, err := apiClient.Clients().Create(context.Background(), "team-1", &swydo.ClientCreate{
			Name:  "Acme",
			Email: "a@acme.test",
		})
		require.NoError(t, err)
		assert.Equal(t, "client-1", account.ID)
		assert.Equal(t, "Acme", account.Name)
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

			_, hasDescription := payload["description"]
			_, hasEmail := payload["email"]
			assert.False(t, hasDescription)
			assert.False(t, hasEmail)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "client-1", "name": "Acme"}`))
		}))

		_, err := apiClient.Clients().Create(context.Background(), "team-1", &swydo.ClientCreate{Name: "Acme"})
		require.NoError(t, err)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := apiClient.Clients().Create(context.Background(), "team-1", nil)
		require.ErrorIs(t, err, swydo.ErrRequestRequired)
	})
}

func TestClientsUpdate(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/teams/team-1/clients/client-1", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Acme Renamed", payload["name"])

		_, hasEmail := payload["email"]
		assert.False(t, hasEmail)

		_, _ = w.Write([]byte(`{"id": "client-1", "name": "Acme Renamed"}`))
	}))

	account, err := apiClient.Clients().Update(context.Background(), "team-1", "client-1", &swydo.ClientUpdate{
		Name: "Acme Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", account.Name)
}

func TestClientsArchive(t *testing.T) {
	t.Parallel()
	t.Run("archive", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/clients/client-1/archive", r.URL.Path)

			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, apiClient.Clients().Archive(context.Background(), "team-1", "client-1"))
	})

	t.Run("unarchive", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/clients/client-1/unarchive", r.URL.Path)

			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, apiClient.Clients().Unarchive(context.Background(), "team-1", "client-1"))
	})
}
