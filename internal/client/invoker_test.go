package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/mayple/swydo/internal/http"
	"github.com/mayple/swydo/internal/spec"
	"github.com/mayple/swydo/pkg/swydo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoker(t *testing.T, handler http.Handler) *invoker {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	registry, err := spec.Load()
	require.NoError(t, err)

	return newInvoker(registry, internalhttp.NewClient(server.URL, "test-key"))
}

func TestInvokerInvoke(t *testing.T) {
	t.Parallel()
	t.Run("substitutes path parameters", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/teams/team-1/users/user-1", r.URL.Path)

			_, _ = w.Write([]byte(`{"id": "user-1"}`))
		}))

		raw, err := inv.Invoke(context.Background(), "getTeamUser", swydo.Params{
			"teamId": "team-1",
			"userId": "user-1",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": "user-1"}`, string(raw))
	})

	t.Run("escapes path parameter values", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/teams/team%2F1", r.URL.EscapedPath())

			_, _ = w.Write([]byte(`{"id": "team/1"}`))
		}))

		_, err := inv.Invoke(context.Background(), "getTeam", swydo.Params{"teamId": "team/1"})
		require.NoError(t, err)
	})

	t.Run("unknown operation fails without a request", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := inv.Invoke(context.Background(), "frobnicate", nil)
		require.ErrorIs(t, err, swydo.ErrUnknownOperation)
	})

	t.Run("missing path parameter fails without a request", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := inv.Invoke(context.Background(), "getTeamUser", swydo.Params{"teamId": "team-1"})
		require.ErrorIs(t, err, swydo.ErrMissingParameter)
	})

	t.Run("forwards query parameters that are present", func(t *testing.T) {
		t.Parallel()

		inv := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0", r.URL.Query().Get("skip"))
			assert.Equal(t, "50", r.URL.Query().Get("limit"))

			_, _ = w.Write([]byte(`{"items": [], "total": 0}`))
		}))

		_, err := inv.Invoke(context.Background(), "getTeams", swydo.Params{
			"skip":  0,
			"limit": 50,
		})
		require.NoError(t, err)
	})
}
