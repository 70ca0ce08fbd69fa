package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
	"github.com/stretchr/testify/require"
)

func TestFileServiceList(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()
	yes := true

	all, err := env.files.List(ctx, sid, domain.FileFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"Project_Report.docx", "Financial_Data.xlsx", "Presentation.pptx"}, fileNames(all))

	docs, err := env.files.List(ctx, sid, domain.FileFilter{Type: domain.FileTypeDocument})
	require.NoError(t, err)
	for _, f := range docs {
		require.Equal(t, domain.FileTypeDocument, f.Type)
	}
	require.Len(t, docs, 1)

	got, err := env.files.List(ctx, sid, domain.FileFilter{Query: "report", Encrypted: &yes})
	require.NoError(t, err)
	require.Equal(t, []string{"Project_Report.docx"}, fileNames(got))

	t.Run("sessions have separate registries", func(t *testing.T) {
		other := env.startSession(t)
		require.NoError(t, env.files.Delete(ctx, other, "1"))

		mine, err := env.files.List(ctx, sid, domain.FileFilter{})
		require.NoError(t, err)
		require.Len(t, mine, 3)
	})
}

func TestFileServiceSingleOps(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()

	f, err := env.files.Encrypt(ctx, sid, "3")
	require.NoError(t, err)
	require.True(t, f.Encrypted)

	notices, err := env.sessions.DrainNotices(sid)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	require.Equal(t, "File Encrypted", notices[0].Title)
	require.Equal(t, "File has been encrypted using AES-256", notices[0].Description)

	events, err := env.feed.List(ctx, domain.EventEncryption)
	require.NoError(t, err)
	require.Equal(t, "Presentation.pptx encrypted with AES-256", events[0].Description)

	t.Run("encrypt is unconditional", func(t *testing.T) {
		f, err := env.files.Encrypt(ctx, sid, "3")
		require.NoError(t, err)
		require.True(t, f.Encrypted)
		noticeTitles(t, env.sessions, sid)
	})

	t.Run("share toggles", func(t *testing.T) {
		f, err := env.files.ToggleShare(ctx, sid, "1")
		require.NoError(t, err)
		require.True(t, f.Shared)

		notices, err := env.sessions.DrainNotices(sid)
		require.NoError(t, err)
		require.Equal(t, "File Shared", notices[0].Title)
		require.Equal(t, "File is now shared with read-write permissions", notices[0].Description)

		f, err = env.files.ToggleShare(ctx, sid, "1")
		require.NoError(t, err)
		require.False(t, f.Shared)
		require.Equal(t, []string{"Sharing Disabled"}, noticeTitles(t, env.sessions, sid))
	})

	t.Run("download logs an access", func(t *testing.T) {
		_, err := env.files.Download(ctx, sid, "2")
		require.NoError(t, err)
		require.Equal(t, []string{"File Downloaded"}, noticeTitles(t, env.sessions, sid))

		events, err := env.feed.List(ctx, domain.EventFileAccess)
		require.NoError(t, err)
		require.Equal(t, "Financial_Data.xlsx downloaded", events[0].Description)
	})

	t.Run("delete removes", func(t *testing.T) {
		require.NoError(t, env.files.Delete(ctx, sid, "2"))
		require.Equal(t, []string{"File Deleted"}, noticeTitles(t, env.sessions, sid))

		_, err := env.files.Get(ctx, sid, "2")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, env.files.Delete(ctx, sid, "2"), store.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.files.Encrypt(ctx, sid, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = env.files.ToggleShare(ctx, sid, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestFileServiceBatch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()

	res, err := env.files.Batch(ctx, sid, domain.BatchEncrypt, []string{"1", "3", "3", "ghost"})
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, res.Changed)
	require.Equal(t, []string{"1"}, res.Unchanged)
	require.Equal(t, []string{"ghost"}, res.Missing)

	notices, err := env.sessions.DrainNotices(sid)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	require.Equal(t, "Batch Encryption Complete", notices[0].Title)
	require.Equal(t, "1 file(s) have been encrypted", notices[0].Description)

	res, err = env.files.EncryptMany(ctx, sid, []string{"1", "2", "3"})
	require.NoError(t, err)
	require.Empty(t, res.Changed)
	require.Equal(t, []string{"No Action Required"}, noticeTitles(t, env.sessions, sid))

	res, err = env.files.Batch(ctx, sid, domain.BatchShare, []string{"1", "2"})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, res.Changed)

	files, err := env.files.List(ctx, sid, domain.FileFilter{})
	require.NoError(t, err)
	require.True(t, files[0].Shared)
	require.False(t, files[1].Shared)

	res, err = env.files.Batch(ctx, sid, domain.BatchDelete, []string{"1", "2", "9"})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, res.Changed)
	require.Equal(t, []string{"9"}, res.Missing)

	files, err = env.files.List(ctx, sid, domain.FileFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"Presentation.pptx"}, fileNames(files))

	_, err = env.files.Batch(ctx, sid, "shred", []string{"3"})
	require.ErrorIs(t, err, ErrInvalidBatch)
}

func TestFileServiceSessionEndDropsFiles(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	sid := env.startSession(t)
	ctx := context.Background()

	require.NoError(t, env.sessions.End(ctx, sid))

	files, err := env.store.Files().ListFiles(ctx, sid)
	require.NoError(t, err)
	require.Empty(t, files)
}
