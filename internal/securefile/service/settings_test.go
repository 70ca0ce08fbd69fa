package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()

	require.Equal(t, domain.DefaultSettings(), env.settings.Get(sid))

	next := domain.DefaultSettings()
	next.EncryptionType = domain.EncryptionRSA2048
	next.DefaultPermissions = domain.AccessReadOnly

	saved, err := env.settings.Update(ctx, sid, next)
	require.NoError(t, err)
	require.Equal(t, next, saved)
	require.Equal(t, next, env.settings.Get(sid))
	require.Equal(t, []string{"Settings Saved"}, noticeTitles(t, env.sessions, sid))

	events, err := env.feed.List(ctx, domain.EventAdmin)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "student", events[0].User)

	t.Run("encryption setting drives notices", func(t *testing.T) {
		_, err := env.files.Encrypt(ctx, sid, "3")
		require.NoError(t, err)

		notices, err := env.sessions.DrainNotices(sid)
		require.NoError(t, err)
		require.Equal(t, "File has been encrypted using RSA-2048", notices[0].Description)

		_, err = env.files.ToggleShare(ctx, sid, "1")
		require.NoError(t, err)
		notices, err = env.sessions.DrainNotices(sid)
		require.NoError(t, err)
		require.Equal(t, "File is now shared with read-only permissions", notices[0].Description)
	})

	t.Run("invalid settings are rejected", func(t *testing.T) {
		bad := domain.DefaultSettings()
		bad.NotificationMethod = "carrier-pigeon"
		_, err := env.settings.Update(ctx, sid, bad)
		require.ErrorIs(t, err, domain.ErrInvalidSetting)
		require.Equal(t, next, env.settings.Get(sid))
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := env.settings.Update(ctx, "ghost", next)
		require.ErrorIs(t, err, ErrSessionNotFound)
		require.Equal(t, domain.DefaultSettings(), env.settings.Get("ghost"))
	})

	require.NoError(t, env.sessions.End(ctx, sid))
	require.Equal(t, domain.DefaultSettings(), env.settings.Get(sid))
}
