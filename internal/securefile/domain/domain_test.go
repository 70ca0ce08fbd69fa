package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/stretchr/testify/require"
)

func TestFileTypeFromName(t *testing.T) {
	cases := map[string]domain.FileType{
		"notes.txt":       domain.FileTypeDocument,
		"Report.PDF":      domain.FileTypeDocument,
		"budget.xlsx":     domain.FileTypeSpreadsheet,
		"export.csv":      domain.FileTypeSpreadsheet,
		"deck.ppt":        domain.FileTypePresentation,
		"archive.tar.gz":  domain.FileTypeDocument,
		"README":          domain.FileTypeDocument,
		"weird.name.pptx": domain.FileTypePresentation,
	}
	for name, want := range cases {
		require.Equal(t, want, domain.FileTypeFromName(name), name)
	}
}

func TestFormatSize(t *testing.T) {
	cases := map[int64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KB",
		1536:            "1.5 KB",
		1024*1024 - 1:   "1024.0 KB",
		1024 * 1024:     "1.0 MB",
		2516582:         "2.4 MB",
		5 * 1024 * 1024: "5.0 MB",
	}
	for in, want := range cases {
		require.Equal(t, want, domain.FormatSize(in), "size %d", in)
	}
}

func TestFileFilterMatches(t *testing.T) {
	files := domain.SeedFiles()
	yes, no := true, false

	match := func(ff domain.FileFilter) []string {
		var names []string
		for _, f := range files {
			if ff.Matches(f) {
				names = append(names, f.Name)
			}
		}
		return names
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		require.Len(t, match(domain.FileFilter{}), 3)
	})

	t.Run("type Document", func(t *testing.T) {
		require.Equal(t, []string{"Project_Report.docx"}, match(domain.FileFilter{Type: domain.FileTypeDocument}))
	})

	t.Run("search is case insensitive and ANDed with encrypted", func(t *testing.T) {
		require.Equal(t, []string{"Project_Report.docx"}, match(domain.FileFilter{Query: "REPORT", Encrypted: &yes}))
		require.Empty(t, match(domain.FileFilter{Query: "report", Encrypted: &no}))
	})

	t.Run("unencrypted only", func(t *testing.T) {
		require.Equal(t, []string{"Presentation.pptx"}, match(domain.FileFilter{Encrypted: &no}))
	})
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{59 * time.Minute, "59m ago"},
		{2 * time.Hour, "2h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, domain.RelativeTime(now, now.Add(-tc.ago)), tc.ago.String())
	}
}

func TestCodeAndPasswordSteps(t *testing.T) {
	require.True(t, domain.PasswordStepComplete("alice", "hunter2"))
	require.False(t, domain.PasswordStepComplete("alice", ""))
	require.False(t, domain.PasswordStepComplete("", "hunter2"))
	require.True(t, domain.PasswordStepComplete(" ", " "), "whitespace is still something typed")

	require.True(t, domain.CodeStepComplete("123456"))
	require.True(t, domain.CodeStepComplete("abcdef"))
	require.True(t, domain.CodeStepComplete("ññññññ"), "six runes, not six bytes")
	require.False(t, domain.CodeStepComplete("12345"))
	require.False(t, domain.CodeStepComplete("1234567"))

	require.Equal(t, "123456", domain.JoinCodeDigits([]string{"1", "2", "3", "4", "5", "6"}))
	require.Equal(t, "ñ23456", domain.JoinCodeDigits([]string{"ñ", "2", "3", "4", "5", "6"}))
	require.Empty(t, domain.JoinCodeDigits([]string{"12", "3", "4", "5", "6"}), "one box per character")
	require.Empty(t, domain.JoinCodeDigits([]string{"1", "2", "", "4", "5", "6"}))
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, domain.DefaultSettings().Validate())

	s := domain.DefaultSettings()
	s.EncryptionType = "rot13"
	s.ThreatLevel = "apocalyptic"

	err := s.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidSetting)
	require.Contains(t, err.Error(), "encryption_type")
	require.Contains(t, err.Error(), "threat_level")
}

func TestSeedEventsNewestFirst(t *testing.T) {
	now := time.Now()
	events := domain.SeedEvents(now)
	require.Len(t, events, 6)
	for i := 1; i < len(events); i++ {
		require.True(t, events[i-1].Timestamp.After(events[i].Timestamp))
	}
}

func TestTutorialOptions(t *testing.T) {
	for _, q := range domain.TutorialQuestions() {
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		require.Equal(t, 1, correct, "question %s has exactly one right answer", q.ID)

		_, ok := q.Option("nope")
		require.False(t, ok)
	}
}
