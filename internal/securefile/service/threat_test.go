package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/stretchr/testify/require"
)

func TestThreatSimulation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()

	alert, err := env.threats.Simulate(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, "Unauthorized Access Attempt", alert.Title)
	require.Equal(t, "192.168.1.45", alert.SourceIP)
	require.Equal(t, "Financial_Data.xlsx", alert.Target)
	require.Equal(t, "Brute Force Attack", alert.Method)
	require.Equal(t, "Blocked", alert.Status)

	var notices []domain.Notice
	require.Eventually(t, func() bool {
		got, err := env.sessions.DrainNotices(sid)
		notices = append(notices, got...)
		return err == nil && len(notices) > 0
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, "Security Alert", notices[0].Title)
	require.Equal(t, domain.NoticeDestructive, notices[0].Variant)

	require.Eventually(t, func() bool {
		events, err := env.feed.List(ctx, domain.EventThreat)
		return err == nil && len(events) == 1 && events[0].Severity == domain.SeverityHigh
	}, time.Second, 5*time.Millisecond)

	blocked, err := env.threats.Block(ctx, sid, alert.ID)
	require.NoError(t, err)
	require.True(t, blocked.Responded)
	require.Equal(t, []string{"Security Response Initiated"}, noticeTitles(t, env.sessions, sid))

	_, err = env.threats.Block(ctx, sid, alert.ID)
	require.NoError(t, err)
	require.Empty(t, noticeTitles(t, env.sessions, sid), "blocking twice responds once")

	require.NoError(t, env.threats.Dismiss(sid, alert.ID))
	_, err = env.threats.Get(sid, alert.ID)
	require.ErrorIs(t, err, ErrThreatNotFound)
}

func TestThreatDismissBeforeAlert(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	env.threats.AlertDelay = time.Hour

	alert, err := env.threats.Simulate(context.Background(), sid)
	require.NoError(t, err)
	require.NoError(t, env.threats.Dismiss(sid, alert.ID))
	require.ErrorIs(t, env.threats.Dismiss(sid, alert.ID), ErrThreatNotFound)
	require.Empty(t, noticeTitles(t, env.sessions, sid))
}

func TestThreatRequiresLiveSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.threats.Simulate(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = env.threats.Block(context.Background(), "ghost", "x")
	require.ErrorIs(t, err, ErrThreatNotFound)
}
