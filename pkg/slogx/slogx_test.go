package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, slogx.ParseLevel(in), "level %q", in)
	}
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "test", Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { slog.SetDefault(slogx.Discard()) })

	t.Run("echoes the request id and logs the status", func(t *testing.T) {
		buf.Reset()
		h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The request logger has to be reachable from handlers
			require.NotSame(t, slog.Default(), slogx.FromContext(r.Context()))
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/files/batch", nil)
		req.Header.Set(slogx.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.Equal(t, "req-123", line["req_id"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
	})

	t.Run("generates a request id when missing", func(t *testing.T) {
		h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
		require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
	})
}

func TestFromContextOr(t *testing.T) {
	fallback := slogx.Discard()
	require.Same(t, fallback, slogx.FromContextOr(context.Background(), fallback))

	reqLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := slogx.WithContext(context.Background(), reqLogger)
	require.Same(t, reqLogger, slogx.FromContextOr(ctx, fallback))
}
