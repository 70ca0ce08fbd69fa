package jwtx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newHS256(t *testing.T, issuer string) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(bytes.Repeat([]byte("k"), jwtx.MinSecretSize), issuer)
	require.NoError(t, err)
	return h
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "securefile-edu")
	require.Error(t, err)
}

func TestHS256RoundTrip(t *testing.T) {
	h := newHS256(t, "securefile-edu")
	now := time.Now().UTC()

	tok, err := h.Sign(jwtx.NewSessionClaims("sess-1", "alice", "securefile-edu", time.Hour, now))
	require.NoError(t, err)
	require.Equal(t, "HS256", h.Alg())

	got, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "sess-1", got.SID)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, []string{"pwd", "otp"}, got.AMR)
}

func TestHS256Verify(t *testing.T) {
	h := newHS256(t, "securefile-edu")
	now := time.Now().UTC()

	t.Run("expired token", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewSessionClaims("sess-1", "alice", "securefile-edu", time.Minute, now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewSessionClaims("sess-1", "alice", "someone-else", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("different secret", func(t *testing.T) {
		other, err := jwtx.NewHS256(bytes.Repeat([]byte("x"), jwtx.MinSecretSize), "securefile-edu")
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewSessionClaims("sess-1", "alice", "securefile-edu", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("missing sid", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewSessionClaims("", "alice", "securefile-edu", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMissingSID)
	})

	t.Run("alg none is refused", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("sess-1", "alice", "securefile-edu", time.Hour, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
