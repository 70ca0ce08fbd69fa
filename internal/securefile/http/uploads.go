package http

import (
	"net/http"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// UploadsHandler handles simulated uploads.
type UploadsHandler struct {
	UploadService *service.UploadService
}

// HandleStart handles POST /v1/uploads
//
//	@Summary		Start Upload
//	@Description	Starts a simulated upload. Progress advances on a timer and the file appears once it completes.
//	@Tags			Uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		vaultsdk.UploadRequest	true	"file name, size and optional encryption"
//	@Success		202		{object}	vaultsdk.UploadResponse	"upload in progress"
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/uploads [post].
func (h *UploadsHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.UploadRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	job, err := h.UploadService.Start(r.Context(), httpx.SessionID(r.Context()), req.FileName, req.SizeBytes, domain.EncryptionType(req.Encryption))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, toUploadResponse(job))
}

// HandleGet handles GET /v1/uploads/{id}
//
//	@Summary		Get Upload
//	@Description	Returns upload progress. file_id is set once the upload is done.
//	@Tags			Uploads
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Upload ID"
//	@Success		200	{object}	vaultsdk.UploadResponse	"progress"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/uploads/{id} [get].
func (h *UploadsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	job, err := h.UploadService.Get(httpx.SessionID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUploadResponse(job))
}

// HandleCancel handles DELETE /v1/uploads/{id}
//
//	@Summary		Cancel Upload
//	@Description	Stops an upload before it completes. Nothing is added to the registry.
//	@Tags			Uploads
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Upload ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/uploads/{id} [delete].
func (h *UploadsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.UploadService.Cancel(httpx.SessionID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
