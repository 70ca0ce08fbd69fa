package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// EventsHandler serves the shared security activity feed.
type EventsHandler struct {
	FeedService *service.FeedService
}

// HandleList handles GET /v1/events
//
//	@Summary		List Security Events
//	@Description	Returns the activity feed, newest first, optionally narrowed to one event type.
//	@Tags			Security
//	@Produce		json
//	@Security		BearerAuth
//	@Param			type	query		string					false	"login, file_access, encryption, threat or admin"
//	@Success		200		{object}	vaultsdk.EventsResponse	"events"
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var eventType domain.EventType
	if t := r.URL.Query().Get("type"); t != "" && t != "all" {
		eventType = domain.EventType(t)
		if !eventType.Valid() {
			vaultsdk.ErrInvalidRequest.WithDescription("type must be one of login, file_access, encryption, threat, admin").WriteError(w)
			return
		}
	}

	events, err := h.FeedService.List(r.Context(), eventType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEventsResponse(events, time.Now()))
}

// ThreatsHandler drives the threat simulation.
type ThreatsHandler struct {
	ThreatService *service.ThreatService
}

// HandleSimulate handles POST /v1/threats/simulate
//
//	@Summary		Simulate Threat
//	@Description	Creates a canned intrusion alert. The destructive notice and the feed event follow shortly after.
//	@Tags			Security
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	vaultsdk.ThreatResponse	"alert"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/threats/simulate [post].
func (h *ThreatsHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	alert, err := h.ThreatService.Simulate(r.Context(), httpx.SessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toThreatResponse(alert))
}

// HandleBlock handles POST /v1/threats/{id}/block
//
//	@Summary		Block Threat Source
//	@Description	Responds to the alert. Only the first response raises a notice.
//	@Tags			Security
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Alert ID"
//	@Success		200	{object}	vaultsdk.ThreatResponse	"alert with responded=true"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/threats/{id}/block [post].
func (h *ThreatsHandler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	alert, err := h.ThreatService.Block(r.Context(), httpx.SessionID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toThreatResponse(alert))
}

// HandleDismiss handles DELETE /v1/threats/{id}
//
//	@Summary		Dismiss Threat
//	@Description	Closes the alert dialog. A notice that has not fired yet is cancelled.
//	@Tags			Security
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Alert ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/threats/{id} [delete].
func (h *ThreatsHandler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.ThreatService.Dismiss(httpx.SessionID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SettingsHandler handles the session's security preferences.
type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet handles GET /v1/settings
//
//	@Summary		Get Settings
//	@Description	Returns the session's security settings.
//	@Tags			Settings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.SettingsBody	"settings"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toSettingsBody(h.SettingsService.Get(httpx.SessionID(r.Context()))))
}

// HandleUpdate handles PUT /v1/settings
//
//	@Summary		Save Settings
//	@Description	Replaces all six settings. Every field must be one of its listed options.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		vaultsdk.SettingsBody	true	"all six settings"
//	@Success		200		{object}	vaultsdk.SettingsBody	"saved settings"
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		422		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/settings [put].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.SettingsBody
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	saved, err := h.SettingsService.Update(r.Context(), httpx.SessionID(r.Context()), fromSettingsBody(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSettingsBody(saved))
}
