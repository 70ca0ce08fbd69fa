package service

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/store/drivers/sqlite"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "securefile-test"

type testEnv struct {
	store    *sqlite.Store
	signer   *jwtx.HS256
	sessions *SessionService
	feed     *FeedService
	settings *SettingsService
	files    *FileService
	uploads  *UploadService
	threats  *ThreatService
	auth     *AuthFlowService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewHS256(bytes.Repeat([]byte("k"), jwtx.MinSecretSize), testIssuer)
	require.NoError(t, err)

	log := slogx.Discard()

	sessions := NewSessionService(log, nil, DefaultSessionTimeout, DefaultSessionWarning)
	// Countdowns are driven by hand in tests.
	sessions.TickInterval = time.Hour

	feed := NewFeedService(st, log, nil, time.Hour, DefaultFeedCapacity)
	feed.Rand = rand.New(rand.NewPCG(1, 2))

	settings := NewSettingsService(sessions, feed, log)
	files := &FileService{Store: st, Sessions: sessions, Settings: settings, Feed: feed, Logger: log}
	uploads := NewUploadService(files, sessions, settings, log, nil, time.Millisecond, 25)
	threats := NewThreatService(sessions, feed, log, nil)
	threats.AlertDelay = 10 * time.Millisecond

	sessions.AddHooks(settings, files, uploads, threats)

	auth := NewAuthFlowService(sessions, feed, signer, log, nil, testIssuer, 0)

	t.Cleanup(func() {
		uploads.StopAll()
		threats.StopAll()
		sessions.StopAll(context.Background())
	})

	return &testEnv{
		store:    st,
		signer:   signer,
		sessions: sessions,
		feed:     feed,
		settings: settings,
		files:    files,
		uploads:  uploads,
		threats:  threats,
		auth:     auth,
	}
}

// startSession signs in without going through the auth flow.
func (e *testEnv) startSession(t *testing.T) string {
	t.Helper()

	st, err := e.sessions.Start(context.Background(), "student")
	require.NoError(t, err)
	return st.ID
}

func noticeTitles(t *testing.T, sessions *SessionService, sessionID string) []string {
	t.Helper()

	notices, err := sessions.DrainNotices(sessionID)
	require.NoError(t, err)

	titles := make([]string, len(notices))
	for i, n := range notices {
		titles[i] = n.Title
	}
	return titles
}

func fileNames(files []domain.FileRecord) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}
