package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreNoops(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded("logout")
		m.SessionWarned()
		m.AuthStep("password", true)
		m.FileOp("encrypt", 2)
		m.Upload("completed")
		m.Event("login")
		m.Threat("simulated")
	})
}

func TestCountersAndHandler(t *testing.T) {
	m := metrics.New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded("timeout")
	m.FileOp("encrypt", 3)
	m.FileOp("delete", 0) // no-op

	count, err := testutil.GatherAndCount(m.Registry, "securefile_file_operations_total")
	require.NoError(t, err)
	require.Equal(t, 1, count, "zero-count ops never create a series")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "securefile_sessions_active 1")
	require.Contains(t, string(body), `securefile_sessions_ended_total{reason="timeout"} 1`)
	require.Contains(t, string(body), `securefile_file_operations_total{op="encrypt"} 3`)
	require.Contains(t, string(body), "go_goroutines")
}
