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

func TestReportsCreate(t *testing.T) {
	t.Parallel()
	t.Run("posts the payload with the compare period by name", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/reports", r.URL.Path)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Monthly", payload["name"])
			assert.Equal(t, "previousMonth", payload["comparePeriod"])

			_, hasAuthor := payload["authorId"]
			assert.False(t, hasAuthor)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "report-1", "name": "Monthly", "comparePeriod": "previousMonth"}`))
		}))

		report, err := apiClient.Reports().Create(context.Background(), "team-1", &swydo.ReportCreate{
			Name:             "Monthly",
			ClientID:         "client-1",
			BrandTemplateID:  "brand-1",
			ReportTemplateID: "template-1",
			ComparePeriod:    swydo.ComparePeriodPreviousMonth,
		})
		require.NoError(t, err)
		assert.Equal(t, "report-1", report.ID)
		assert.Equal(t, swydo.ComparePeriodPreviousMonth, report.ComparePeriod)
	})

	t.Run("rejects an unknown compare period locally", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := apiClient.Reports().Create(context.Background(), "team-1", &swydo.ReportCreate{
			Name:             "Monthly",
			ClientID:         "client-1",
			BrandTemplateID:  "brand-1",
			ReportTemplateID: "template-1",
			ComparePeriod:    "LAST_YEAR",
		})
		require.ErrorIs(t, err, swydo.ErrInvalidComparePeriod)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := apiClient.Reports().Create(context.Background(), "team-1", nil)
		require.ErrorIs(t, err, swydo.ErrRequestRequired)
	})
}

func TestReportsUpdate(t *testing.T) {
	t.Parallel()
	t.Run("patches only the set fields", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/teams/team-1/reports/report-1", r.URL.Path)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Renamed", payload["name"])

			_, hasPeriod := payload["comparePeriod"]
			assert.False(t, hasPeriod)

			_, _ = w.Write([]byte(`{"id": "report-1", "name": "Renamed"}`))
		}))

		report, err := apiClient.Reports().Update(context.Background(), "team-1", "report-1", &swydo.ReportUpdate{
			Name: "Renamed",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", report.Name)
	})

	t.Run("rejects an unknown compare period locally", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := apiClient.Reports().Update(context.Background(), "team-1", "report-1", &swydo.ReportUpdate{
			ComparePeriod: "yesterday",
		})
		require.ErrorIs(t, err, swydo.ErrInvalidComparePeriod)
	})
}

func TestReportsDelete(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/teams/team-1/reports/report-1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, apiClient.Reports().Delete(context.Background(), "team-1", "report-1"))
}

func TestReportsShare(t *testing.T) {
	t.Parallel()
	t.Run("share", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/reports/report-1/share", r.URL.Path)

			_, _ = w.Write([]byte(`{"id": "report-1", "shared": true, "shareUrl": "https://reports.swydo.com/r/abc"}`))
		}))

		require.NoError(t, apiClient.Reports().Share(context.Background(), "team-1", "report-1"))
	})

	t.Run("unshare", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/teams/team-1/reports/report-1/unshare", r.URL.Path)

			_, _ = w.Write([]byte(`{"id": "report-1", "shared": false}`))
		}))

		require.NoError(t, apiClient.Reports().Unshare(context.Background(), "team-1", "report-1"))
	})
}

func TestReportsGet(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/team-1/reports/report-1", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": "report-1",
			"name": "Monthly",
			"clientId": "client-1",
			"comparePeriod": "previous",
			"shared": true,
			"shareUrl": "https://reports.swydo.com/r/abc"
		}`))
	}))

	report, err := apiClient.Reports().Get(context.Background(), "team-1", "report-1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly", report.Name)
	assert.True(t, report.Shared)
	assert.Equal(t, "https://reports.swydo.com/r/abc", report.ShareURL)
}
