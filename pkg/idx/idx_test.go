package idx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "../etc/passwd"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	// Check valid comparisons, I usually always get this wrong
	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}

func TestGeneratorIsMonotonic(t *testing.T) {
	// Fixed entropy so the only thing moving is the monotonic increment
	g := idx.NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0x01}, 1024)))
	at := time.Unix(1700000000, 0).UTC()

	prev := g.NewAt(at)
	for range 10 {
		next := g.NewAt(at)
		require.Equal(t, 1, idx.Compare(next, prev))
		prev = next
	}
}

func TestMustParse(t *testing.T) {
	// This will panic if it fails, I'm being lazy and not writing a recover harness
	id := idx.MustParse("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.False(t, id.IsZero())
}
