package http

import (
	"net/http"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// AuthFlowHandler exposes the two-step sign-in as JSON.
type AuthFlowHandler struct {
	AuthFlowService *service.AuthFlowService
	SecureCookies   bool
}

// HandleBegin handles POST /v1/auth/flows
//
//	@Summary		Begin Sign-in
//	@Description	Starts a simulated two-step sign-in and enrolls a demo TOTP authenticator for it.
//	@Tags			Auth
//	@Produce		json
//	@Success		201	{object}	vaultsdk.AuthFlowResponse	"flow awaiting the password step"
//	@Failure		429	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/flows [post].
func (h *AuthFlowHandler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	flow, err := h.AuthFlowService.Begin(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toFlowResponse(flow))
}

// HandleGet handles GET /v1/auth/flows/{id}
//
//	@Summary		Get Sign-in Flow
//	@Description	Returns the flow and the demo authenticator's current code.
//	@Tags			Auth
//	@Produce		json
//	@Param			id	path		string						true	"Flow ID"
//	@Success		200	{object}	vaultsdk.AuthFlowResponse	"flow with demo_code"
//	@Failure		404	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/flows/{id} [get].
func (h *AuthFlowHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	flow, err := h.AuthFlowService.Get(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	code, err := h.AuthFlowService.DemoCode(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := toFlowResponse(flow)
	resp.DemoCode = code
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePassword handles POST /v1/auth/flows/{id}/password
//
//	@Summary		Submit Password Step
//	@Description	Advances to the code step when both fields are filled in. No credential is checked.
//	@Description	The response arrives after a simulated verification delay.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Flow ID"
//	@Param			request	body		vaultsdk.PasswordStepRequest	true	"username and password"
//	@Success		200		{object}	vaultsdk.StepResponse			"advanced=false when a field was blank"
//	@Failure		400		{object}	vaultsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	vaultsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/auth/flows/{id}/password [post].
func (h *AuthFlowHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.PasswordStepRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.AuthFlowService.SubmitPassword(r.Context(), r.PathValue("id"), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStepResponse(res))
}

// HandleCode handles POST /v1/auth/flows/{id}/code
//
//	@Summary		Submit Code Step
//	@Description	Any six characters complete the sign-in. On success a session is started and its token
//	@Description	is returned and also set as the session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Flow ID"
//	@Param			request	body		vaultsdk.CodeStepRequest	true	"code or six digits"
//	@Success		200		{object}	vaultsdk.StepResponse		"advanced=false when the code is not six characters"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/flows/{id}/code [post].
func (h *AuthFlowHandler) HandleCode(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.CodeStepRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	code := req.Code
	if len(req.Digits) > 0 {
		code = domain.JoinCodeDigits(req.Digits)
	}

	res, err := h.AuthFlowService.SubmitCode(r.Context(), r.PathValue("id"), code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if res.Token != "" {
		httpx.SetSessionCookie(w, res.Token, h.SecureCookies)
	}
	httpx.WriteJSON(w, http.StatusOK, toStepResponse(res))
}
