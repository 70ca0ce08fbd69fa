package httpx_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type aliveSet map[string]bool

func (a aliveSet) Alive(id string) bool { return a[id] }

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRequireSession(t *testing.T) {
	signer, err := jwtx.NewHS256(bytes.Repeat([]byte("s"), jwtx.MinSecretSize), "securefile-edu")
	require.NoError(t, err)

	token := func(sid string) string {
		tok, err := signer.Sign(jwtx.NewSessionClaims(sid, "alice", "securefile-edu", time.Hour, time.Now()))
		require.NoError(t, err)
		return tok
	}

	var gotSID, gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = httpx.SessionID(r.Context())
		gotUser = httpx.Username(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	api := httpx.RequireSession(signer, aliveSet{"live": true}, httpx.DenyJSON)(inner)
	page := httpx.RequireSession(signer, aliveSet{"live": true}, httpx.RedirectTo("/auth"))(inner)

	t.Run("cookie with live session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: token("live")})

		rec := serve(api, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "live", gotSID)
		require.Equal(t, "alice", gotUser)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
		req.Header.Set("Authorization", "Bearer "+token("live"))
		require.Equal(t, http.StatusNoContent, serve(api, req).Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := serve(api, httptest.NewRequest(http.MethodGet, "/v1/session", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "missing session token")
	})

	t.Run("ended session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: token("gone")})

		rec := serve(api, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "session has ended")
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: token("live") + "x"})
		require.Equal(t, http.StatusUnauthorized, serve(api, req).Code)
	})

	t.Run("pages redirect to auth", func(t *testing.T) {
		rec := serve(page, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/auth", rec.Header().Get("Location"))
	})
}
