package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
)

// SessionCookieName holds the signed session token in the browser.
const SessionCookieName = "securefile_session"

// SessionChecker reports whether the server still considers a session
// signed in. A valid token for a logged-out session is refused.
type SessionChecker interface {
	Alive(sessionID string) bool
}

// DenyFunc writes the response for a request without a live session.
type DenyFunc func(w http.ResponseWriter, r *http.Request, reason string)

// DenyJSON answers API requests with a 401 JSON error.
func DenyJSON(w http.ResponseWriter, r *http.Request, reason string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": reason,
	})
}

// RedirectTo sends page requests back to path (normally the auth view).
func RedirectTo(path string) DenyFunc {
	return func(w http.ResponseWriter, r *http.Request, reason string) {
		ClearSessionCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
	}
}

// RequireSession verifies the session token from the cookie (or a Bearer
// header, used by the CLI) and that the session is still alive.
func RequireSession(v jwtx.Verifier, sessions SessionChecker, deny DenyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := sessionToken(r)
			if raw == "" {
				deny(w, r, "missing session token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				deny(w, r, "session token verification failed")
				return
			}

			if !sessions.Alive(claims.SID) {
				deny(w, r, "session has ended")
				return
			}

			ctx = contextWithSession(ctx, claims)
			ctx = slogx.WithAttrs(ctx, "session_id", claims.SID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

// SetSessionCookie stores token in an HttpOnly cookie scoped to the site.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
