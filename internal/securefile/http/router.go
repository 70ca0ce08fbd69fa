package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"

	_ "github.com/aussiebroadwan/securefile/api/securefile" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// SecureCookies marks the session cookie Secure (set outside dev).
	SecureCookies bool
	Metrics       *metrics.Metrics

	SessionService  *service.SessionService
	AuthFlowService *service.AuthFlowService
	FileService     *service.FileService
	UploadService   *service.UploadService
	FeedService     *service.FeedService
	ThreatService   *service.ThreatService
	SettingsService *service.SettingsService
	TutorialService *service.TutorialService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerAuth()
	r.registerSession()
	r.registerFiles()
	r.registerUploads()
	r.registerSecurity()
	r.registerTutorial()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SecureFile Edu API
//	@version		0.1.0
//	@description	Simulated secure file manager for teaching file security basics.
//	@description
//	@description	Nothing here is real security: sign-in accepts any filled-in password and any six-character code,
//	@description	encryption is a flag and files never leave memory.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/securefile
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from the code step. Format: "Bearer {token}". Browsers use the securefile_session cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps an API handler with the live-session check and a per-session limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.verifier, r.SessionService, httpx.DenyJSON),
		httpx.RateLimitBySession(limit),
	)
}

func (r *Router) registerPages() {
	h := &PagesHandler{
		Verifier:        r.verifier,
		AuthFlowService: r.AuthFlowService,
		SessionService:  r.SessionService,
		FileService:     r.FileService,
		FeedService:     r.FeedService,
		SettingsService: r.SettingsService,
		TutorialService: r.TutorialService,
		SecureCookies:   r.SecureCookies,
	}

	r.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(h.HandleHome),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /auth",
		httpx.Chain(http.HandlerFunc(h.HandleAuth),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Form posts are throttled by IP + username like a real login form
	r.Mux.Handle("POST /auth/password",
		httpx.Chain(http.HandlerFunc(h.HandleAuthPassword),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /auth/code",
		httpx.Chain(http.HandlerFunc(h.HandleAuthCode),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/restart",
		httpx.Chain(http.HandlerFunc(h.HandleAuthRestart),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /dashboard",
		httpx.Chain(http.HandlerFunc(h.HandleDashboard),
			httpx.RequireSession(r.verifier, r.SessionService, httpx.RedirectTo("/auth")),
			httpx.RateLimitBySession(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RequireSession(r.verifier, r.SessionService, httpx.RedirectTo("/")),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthFlowHandler{AuthFlowService: r.AuthFlowService, SecureCookies: r.SecureCookies}

	r.Mux.Handle("POST /v1/auth/flows",
		httpx.Chain(http.HandlerFunc(h.HandleBegin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/auth/flows/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Steps - strict rate limit by IP
	r.Mux.Handle("POST /v1/auth/flows/{id}/password",
		httpx.Chain(http.HandlerFunc(h.HandlePassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/flows/{id}/code",
		httpx.Chain(http.HandlerFunc(h.HandleCode),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	r.Mux.Handle("GET /v1/session", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/session/activity", r.secured(http.HandlerFunc(h.HandleActivity), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/session/notices", r.secured(http.HandlerFunc(h.HandleNotices), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/session", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerFiles() {
	h := &FilesHandler{FileService: r.FileService}

	r.Mux.Handle("GET /v1/files", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/files/batch", r.secured(http.HandlerFunc(h.HandleBatch), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/files/{id}/encrypt", r.secured(http.HandlerFunc(h.HandleEncrypt), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/files/{id}/share", r.secured(http.HandlerFunc(h.HandleShare), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/files/{id}/download", r.secured(http.HandlerFunc(h.HandleDownload), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/files/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerUploads() {
	h := &UploadsHandler{UploadService: r.UploadService}

	r.Mux.Handle("POST /v1/uploads", r.secured(http.HandlerFunc(h.HandleStart), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/uploads/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/uploads/{id}", r.secured(http.HandlerFunc(h.HandleCancel), httpx.ModerateLimit))
}

func (r *Router) registerSecurity() {
	events := &EventsHandler{FeedService: r.FeedService}
	threats := &ThreatsHandler{ThreatService: r.ThreatService}
	settings := &SettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /v1/events", r.secured(http.HandlerFunc(events.HandleList), httpx.LenientLimit))

	r.Mux.Handle("POST /v1/threats/simulate", r.secured(http.HandlerFunc(threats.HandleSimulate), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/threats/{id}/block", r.secured(http.HandlerFunc(threats.HandleBlock), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/threats/{id}", r.secured(http.HandlerFunc(threats.HandleDismiss), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/settings", r.secured(http.HandlerFunc(settings.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/settings", r.secured(http.HandlerFunc(settings.HandleUpdate), httpx.ModerateLimit))
}

func (r *Router) registerTutorial() {
	h := &TutorialHandler{TutorialService: r.TutorialService}

	r.Mux.Handle("GET /v1/tutorial", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/tutorial/answers", r.secured(http.HandlerFunc(h.HandleAnswer), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/tutorial/complete", r.secured(http.HandlerFunc(h.HandleComplete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier, r.FeedService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
	}
}
