package http

import (
	"net/http"

	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// TutorialHandler serves the interactive tutorial.
type TutorialHandler struct {
	TutorialService *service.TutorialService
}

// HandleGet handles GET /v1/tutorial
//
//	@Summary		Get Tutorial
//	@Description	Returns the tutorial questions. Which option is correct is not revealed.
//	@Tags			Tutorial
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.TutorialResponse	"questions"
//	@Failure		401	{object}	vaultsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/tutorial [get].
func (h *TutorialHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toTutorialResponse(h.TutorialService.Questions()))
}

// HandleAnswer handles POST /v1/tutorial/answers
//
//	@Summary		Answer Tutorial Question
//	@Description	Grades one answer. The verdict is also queued as a notice.
//	@Tags			Tutorial
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		vaultsdk.TutorialAnswerRequest	true	"question and option"
//	@Success		200		{object}	vaultsdk.TutorialAnswerResponse	"verdict"
//	@Failure		400		{object}	vaultsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	vaultsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/tutorial/answers [post].
func (h *TutorialHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.TutorialAnswerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	opt, err := h.TutorialService.Answer(httpx.SessionID(r.Context()), req.QuestionID, req.OptionID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TutorialAnswerResponse{
		Correct: opt.Correct,
		Verdict: opt.Verdict,
		Detail:  opt.Detail,
	})
}

// HandleComplete handles POST /v1/tutorial/complete
//
//	@Summary		Complete Tutorial
//	@Tags			Tutorial
//	@Security		BearerAuth
//	@Success		204	"No Content"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tutorial/complete [post].
func (h *TutorialHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if err := h.TutorialService.Complete(httpx.SessionID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
