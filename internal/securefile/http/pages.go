package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// FlowCookieName remembers the browser's in-progress sign-in flow.
const FlowCookieName = "securefile_flow"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// codeDigitFields are the per-box inputs of the code form.
var codeDigitFields = []string{"d1", "d2", "d3", "d4", "d5", "d6"}

// PagesHandler renders the home, auth and dashboard views.
type PagesHandler struct {
	Verifier        jwtx.Verifier
	AuthFlowService *service.AuthFlowService
	SessionService  *service.SessionService
	FileService     *service.FileService
	FeedService     *service.FeedService
	SettingsService *service.SettingsService
	TutorialService *service.TutorialService
	SecureCookies   bool
}

type authPage struct {
	Flow     vaultsdk.AuthFlowResponse
	DemoCode string
	Digits   []string
	Error    string
}

type dashboardPage struct {
	Session  vaultsdk.SessionResponse
	Notices  []vaultsdk.NoticeResponse
	Files    []vaultsdk.FileResponse
	Events   []vaultsdk.EventResponse
	Settings vaultsdk.SettingsBody
	Tutorial []vaultsdk.TutorialQuestionResponse
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", "page", name, "error", err)
	}
}

// signedIn reports whether the request carries a token for a live session.
func (h *PagesHandler) signedIn(r *http.Request) bool {
	c, err := r.Cookie(httpx.SessionCookieName)
	if err != nil || c.Value == "" || h.Verifier == nil {
		return false
	}
	claims, err := h.Verifier.Verify(c.Value)
	if err != nil {
		return false
	}
	return h.SessionService.Alive(claims.SID)
}

func (h *PagesHandler) setFlowCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlowCookieName,
		Value:    id,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearFlowCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlowCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentFlow loads the flow named by the cookie, if it still exists.
func (h *PagesHandler) currentFlow(r *http.Request) (domain.AuthFlow, bool) {
	c, err := r.Cookie(FlowCookieName)
	if err != nil || c.Value == "" {
		return domain.AuthFlow{}, false
	}
	flow, err := h.AuthFlowService.Get(c.Value)
	if err != nil {
		return domain.AuthFlow{}, false
	}
	return flow, true
}

func (h *PagesHandler) renderAuth(w http.ResponseWriter, r *http.Request, status int, flow domain.AuthFlow, msg string) {
	code, _ := h.AuthFlowService.DemoCode(flow.ID)
	render(w, r, status, "auth.html", authPage{
		Flow:     toFlowResponse(flow),
		DemoCode: code,
		Digits:   codeDigitFields,
		Error:    msg,
	})
}

// HandleHome handles GET /
func (h *PagesHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "home.html", struct{ SignedIn bool }{h.signedIn(r)})
}

// HandleAuth handles GET /auth. A browser without a flow gets a new one.
func (h *PagesHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	flow, ok := h.currentFlow(r)
	if !ok || flow.Step == domain.StepAuthenticated {
		var err error
		flow, err = h.AuthFlowService.Begin(r.Context())
		if err != nil {
			slogx.FromContext(r.Context()).Error("failed to begin auth flow", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.setFlowCookie(w, flow.ID)
	}

	h.renderAuth(w, r, http.StatusOK, flow, "")
}

// HandleAuthPassword handles POST /auth/password
func (h *PagesHandler) HandleAuthPassword(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.currentFlow(r)
	if !ok {
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	res, err := h.AuthFlowService.SubmitPassword(r.Context(), flow.ID, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	if !res.Advanced && res.Flow.Step == domain.StepAwaitingPassword {
		h.renderAuth(w, r, http.StatusUnprocessableEntity, res.Flow, "Please enter both username and password")
		return
	}

	http.Redirect(w, r, "/auth", http.StatusSeeOther)
}

// HandleAuthCode handles POST /auth/code. The code comes either as one
// "code" field or as the six d1..d6 boxes.
func (h *PagesHandler) HandleAuthCode(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.currentFlow(r)
	if !ok {
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	code := r.PostFormValue("code")
	if code == "" {
		digits := make([]string, len(codeDigitFields))
		for i, name := range codeDigitFields {
			digits[i] = r.PostFormValue(name)
		}
		code = domain.JoinCodeDigits(digits)
	}

	res, err := h.AuthFlowService.SubmitCode(r.Context(), flow.ID, code)
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	if res.Token == "" {
		h.renderAuth(w, r, http.StatusUnprocessableEntity, res.Flow, "Please enter a 6-digit verification code")
		return
	}

	httpx.SetSessionCookie(w, res.Token, h.SecureCookies)
	clearFlowCookie(w)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleAuthRestart handles POST /auth/restart
func (h *PagesHandler) HandleAuthRestart(w http.ResponseWriter, r *http.Request) {
	clearFlowCookie(w)
	http.Redirect(w, r, "/auth", http.StatusSeeOther)
}

// HandleDashboard handles GET /dashboard. RequireSession has already
// checked the session is live.
func (h *PagesHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := httpx.SessionID(ctx)

	st, err := h.SessionService.State(sid)
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	notices, err := h.SessionService.DrainNotices(sid)
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	files, err := h.FileService.List(ctx, sid, domain.FileFilter{})
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	events, err := h.FeedService.List(ctx, "")
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "dashboard.html", dashboardPage{
		Session:  toSessionResponse(st),
		Notices:  toNoticesResponse(notices).Notices,
		Files:    toFilesResponse(files).Files,
		Events:   toEventsResponse(events, time.Now()).Events,
		Settings: toSettingsBody(h.SettingsService.Get(sid)),
		Tutorial: toTutorialResponse(h.TutorialService.Questions()).Questions,
	})
}

// HandleLogout handles POST /logout
func (h *PagesHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.SessionService.End(ctx, httpx.SessionID(ctx)); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
		slogx.FromContext(ctx).Warn("logout failed", "error", err)
	}
	httpx.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PagesHandler) pageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrFlowNotFound):
		clearFlowCookie(w)
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
	case errors.Is(err, service.ErrSessionNotFound):
		httpx.ClearSessionCookie(w)
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
	default:
		slogx.FromContext(r.Context()).Error("page request failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
