package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Issuer:               "securefile-test",
		DatabaseDSN:          ":memory:",
		SessionTimeout:       15 * time.Minute,
		SessionWarning:       time.Minute,
		AuthLatency:          0,
		FeedInterval:         time.Hour,
		FeedCapacity:         20,
		UploadTick:           time.Millisecond,
		UploadStep:           50,
		Env:                  "test",
		LogLevel:             "error",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestInitSessionKey(t *testing.T) {
	cfg := testConfig()
	app := &Application{logger: slogx.Discard()}

	signer, err := InitSessionKey(cfg, app.logger)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	cfg.TokenSecret = "too-short"
	_, err = InitSessionKey(cfg, app.logger)
	require.Error(t, err)

	cfg.TokenSecret = strings.Repeat("s", 32)
	_, err = InitSessionKey(cfg, app.logger)
	require.NoError(t, err)
}

func TestApplicationLifecycle(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)
	require.NoError(t, application.Start(context.Background()))

	srv := httptest.NewServer(application.Handler())
	defer srv.Close()

	client := vaultsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Feed)

	sess, err := client.Login(ctx, "student", "hunter2")
	require.NoError(t, err)

	events, err := sess.Events(ctx, "")
	require.NoError(t, err)
	require.Len(t, events, 7, "six seeded events plus the login")

	files, err := sess.ListFiles(ctx, vaultsdk.FileFilter{})
	require.NoError(t, err)
	require.Len(t, files, 3)

	resp, err := http.Get(srv.URL + "/swagger/index.html")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, application.Shutdown())
	require.Zero(t, application.sessionService.Count())
}
