package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/app"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the whole application in-process for the client commands.
func newTestServer(t *testing.T) string {
	t.Helper()

	application, err := app.New(app.Config{
		Issuer:               "securefile-test",
		DatabaseDSN:          ":memory:",
		SessionTimeout:       15 * time.Minute,
		SessionWarning:       time.Minute,
		FeedInterval:         time.Hour,
		FeedCapacity:         20,
		UploadTick:           time.Millisecond,
		UploadStep:           50,
		Env:                  "test",
		LogLevel:             "error",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, application.Start(context.Background()))

	ts := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = application.Shutdown()
	})
	return ts.URL
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, app.BuildVersion+"\n", out.String())
}

func TestFilesRejectsBadEncryptedFlag(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"files", "--encrypted", "maybe"})

	err := cmd.Execute()
	require.ErrorContains(t, err, "--encrypted must be true or false")
}

func TestCommandsRegistered(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"serve", "feed", "files", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, sub.Name())
	}
}

func TestFilesCommandPrintsTable(t *testing.T) {
	url := newTestServer(t)

	out := runCommand(t, "files", "--url", url, "--type", "Document")
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Project_Report.docx")
	require.NotContains(t, out, "Financial_Data.xlsx")
}

func TestFeedCommandPrintsTable(t *testing.T) {
	url := newTestServer(t)

	out := runCommand(t, "feed", "--url", url, "--type", "login")
	require.Contains(t, out, "SEVERITY")
	require.Contains(t, out, "Successful login")
	require.NotContains(t, out, "encrypted with AES-256")
}
