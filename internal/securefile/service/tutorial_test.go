package service

import (
	"testing"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/stretchr/testify/require"
)

func TestTutorialService(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	svc := &TutorialService{Sessions: env.sessions}

	require.Len(t, svc.Questions(), 2)

	opt, err := svc.Answer(sid, "encryption", "aes-256")
	require.NoError(t, err)
	require.True(t, opt.Correct)

	opt, err = svc.Answer(sid, "sharing", "public-link")
	require.NoError(t, err)
	require.False(t, opt.Correct)

	notices, err := env.sessions.DrainNotices(sid)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	require.Equal(t, "Correct!", notices[0].Title)
	require.Equal(t, domain.NoticeDefault, notices[0].Variant)
	require.Equal(t, "Not Secure", notices[1].Title)
	require.Equal(t, domain.NoticeDestructive, notices[1].Variant)

	_, err = svc.Answer(sid, "history", "aes-256")
	require.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.Answer(sid, "encryption", "rot13")
	require.ErrorIs(t, err, ErrOptionNotFound)

	require.NoError(t, svc.Complete(sid))
	require.Equal(t, []string{"Tutorial Completed!"}, noticeTitles(t, env.sessions, sid))

	require.ErrorIs(t, svc.Complete("ghost"), ErrSessionNotFound)
}
