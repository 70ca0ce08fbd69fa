package http

import (
	"net/http"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// SessionHandler handles the signed-in session's countdown and notices.
type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleGet handles GET /v1/session
//
//	@Summary		Get Session
//	@Description	Returns the inactivity countdown of the current session.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.SessionResponse	"remaining_seconds, expiring_soon"
//	@Failure		401	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	st, err := h.SessionService.State(httpx.SessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(st))
}

// HandleActivity handles POST /v1/session/activity
//
//	@Summary		Report Activity
//	@Description	Resets the inactivity countdown. Signal is one of pointer, key, click.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		vaultsdk.ActivityRequest	true	"activity signal"
//	@Success		200		{object}	vaultsdk.SessionResponse	"countdown after the reset"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/session/activity [post].
func (h *SessionHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ActivityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	st, err := h.SessionService.Touch(httpx.SessionID(r.Context()), domain.ActivitySignal(req.Signal))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(st))
}

// HandleNotices handles GET /v1/session/notices
//
//	@Summary		Drain Notices
//	@Description	Returns and clears the pending toast notifications of the session, oldest first.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.NoticesResponse	"notices"
//	@Failure		401	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/session/notices [get].
func (h *SessionHandler) HandleNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.SessionService.DrainNotices(httpx.SessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNoticesResponse(notices))
}

// HandleDelete handles DELETE /v1/session
//
//	@Summary		Log Out
//	@Description	Ends the session. Its files, settings, uploads and alerts are discarded.
//	@Tags			Session
//	@Security		BearerAuth
//	@Success		204	"No Content"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.SessionService.End(ctx, httpx.SessionID(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("session logged out", "username", httpx.Username(ctx))
	httpx.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
