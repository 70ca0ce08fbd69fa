package securefile_test

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for SecureFile end-to-end tests.
 * This includes container setup, sign-in and assertions.
 */

const (
	testImageName = "securefile-test:latest"

	testUsername = "student"
	testPassword = "correct horse battery staple"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building SecureFile Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up SecureFile Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/securefile/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv keeps the simulated delays short and parks the event generator
// so feed assertions are deterministic.
func baseEnv() map[string]string {
	return map[string]string{
		"ENV":                        "test",
		"LOG_LEVEL":                  "info",
		"LOG_FORMAT":                 "json",
		"SECUREFILE_AUTH_LATENCY":    "50ms",
		"SECUREFILE_UPLOAD_TICK":     "10ms",
		"SECUREFILE_FEED_INTERVAL":   "1h",
		"SECUREFILE_SESSION_WARNING": "1m",
	}
}

// relaxedRateLimits lifts the strict sign-in throttle, most tests sign in
// more often than a person would.
func relaxedRateLimits() map[string]string {
	return map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
}

// setupContainer starts the server with relaxed rate limits and returns its base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	maps.Copy(env, relaxedRateLimits())
	return startContainer(t, env)
}

// setupContainerWithEnv starts the server with extra environment on top of
// the defaults (production rate limits).
func setupContainerWithEnv(t *testing.T, extra map[string]string) (string, func()) {
	t.Helper()

	env := baseEnv()
	maps.Copy(env, extra)
	return startContainer(t, env)
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signIn walks both sign-in steps and returns the session.
func signIn(t *testing.T, baseURL string) *vaultsdk.Session {
	t.Helper()

	session, err := vaultsdk.NewSDKClient(baseURL).Login(t.Context(), testUsername, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	return session
}

// waitForNotice polls the session's notices until one with title arrives.
func waitForNotice(t *testing.T, session *vaultsdk.Session, title string) vaultsdk.NoticeResponse {
	t.Helper()

	var found vaultsdk.NoticeResponse
	require.Eventually(t, func() bool {
		notices, err := session.Notices(t.Context())
		if err != nil {
			return false
		}
		for _, n := range notices {
			if n.Title == title {
				found = n
				return true
			}
		}
		return false
	}, 10*time.Second, 100*time.Millisecond, "notice %q never arrived", title)
	return found
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *vaultsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
