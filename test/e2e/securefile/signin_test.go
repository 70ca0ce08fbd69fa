package securefile_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

// TestSignInSteps walks the two simulated steps, including the refusals.
func TestSignInSteps(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := vaultsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	flow, err := client.BeginFlow(ctx)
	require.NoError(t, err)
	require.Equal(t, "awaiting_password", flow.Step)
	require.NotEmpty(t, flow.TOTPSecret)

	step, err := client.SubmitPassword(ctx, flow.ID, testUsername, "")
	require.NoError(t, err)
	require.False(t, step.Advanced, "an empty password must not advance")

	step, err = client.SubmitPassword(ctx, flow.ID, testUsername, testPassword)
	require.NoError(t, err)
	require.True(t, step.Advanced)

	step, err = client.SubmitCode(ctx, flow.ID, "123")
	require.NoError(t, err)
	require.False(t, step.Advanced, "a short code must not authenticate")

	withDemo, err := client.GetFlow(ctx, flow.ID)
	require.NoError(t, err)
	require.Len(t, withDemo.DemoCode, 6)

	step, err = client.SubmitCode(ctx, flow.ID, withDemo.DemoCode)
	require.NoError(t, err)
	require.True(t, step.Advanced)
	require.True(t, step.CodeMatchesDemo)
	require.NotEmpty(t, step.Token)
	require.Equal(t, 900, step.Session.RemainingSeconds)
}

// TestLogoutEndsSession verifies a logged out token is refused.
func TestLogoutEndsSession(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	session := signIn(t, baseURL)
	ctx := t.Context()

	state, err := session.Touch(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, testUsername, state.Username)

	require.NoError(t, session.Logout(ctx))

	_, err = session.State(ctx)
	require.ErrorIs(t, err, vaultsdk.ErrUnauthorized)
}

// TestSessionTimeout shortens the countdown and waits for the automatic logout.
func TestSessionTimeout(t *testing.T) {
	baseURL, cleanup := setupContainerWithEnv(t, map[string]string{
		"SECUREFILE_SESSION_TIMEOUT": "3s",
		"SECUREFILE_SESSION_WARNING": "2s",
		"HOUSEKEEPING_INTERVAL":      "1h",
		"RATELIMIT_LENIENT_REQUESTS": "1000",
		"RATELIMIT_LENIENT_BURST":    "1000",
	})
	defer cleanup()

	session := signIn(t, baseURL)

	notice := waitForNotice(t, session, "Session Expiring Soon")
	require.Equal(t, "destructive", notice.Variant)

	require.Eventually(t, func() bool {
		state, err := session.State(t.Context())
		return err != nil || state.LoggedOut
	}, 10*time.Second, 100*time.Millisecond, "session should time out")
}
