package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SECUREFILE_ISSUER", "SECUREFILE_TOKEN_SECRET", "SECUREFILE_DATABASE_DSN",
		"SECUREFILE_SESSION_TIMEOUT", "SECUREFILE_SESSION_WARNING", "SECUREFILE_AUTH_LATENCY",
		"SECUREFILE_FEED_INTERVAL", "SECUREFILE_FEED_CAPACITY", "SECUREFILE_UPLOAD_TICK",
		"SECUREFILE_UPLOAD_STEP", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT",
		"SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "securefile-edu", cfg.Issuer)
	require.Empty(t, cfg.TokenSecret)
	require.Equal(t, "file:securefile?mode=memory&cache=shared", cfg.DatabaseDSN)
	require.Equal(t, 15*time.Minute, cfg.SessionTimeout)
	require.Equal(t, time.Minute, cfg.SessionWarning)
	require.Equal(t, 1500*time.Millisecond, cfg.AuthLatency)
	require.Equal(t, 30*time.Second, cfg.FeedInterval)
	require.Equal(t, 20, cfg.FeedCapacity)
	require.Equal(t, 150*time.Millisecond, cfg.UploadTick)
	require.Equal(t, 5, cfg.UploadStep)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SECUREFILE_SESSION_TIMEOUT", "5m")
	t.Setenv("SECUREFILE_AUTH_LATENCY", "0s")
	t.Setenv("SECUREFILE_FEED_INTERVAL", "45")
	t.Setenv("SECUREFILE_FEED_CAPACITY", "lots")

	cfg := LoadConfig()
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.SessionTimeout)
	require.Equal(t, time.Duration(0), cfg.AuthLatency)
	require.Equal(t, 45*time.Second, cfg.FeedInterval, "bare integers are seconds")
	require.Equal(t, 20, cfg.FeedCapacity, "unparsable values fall back")
}
