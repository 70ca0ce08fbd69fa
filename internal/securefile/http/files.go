package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/pkg/httpx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// FilesHandler handles the simulated file registry of a session.
type FilesHandler struct {
	FileService *service.FileService
}

// parseFileFilter reads q, type and encrypted from the query string.
func parseFileFilter(r *http.Request) (domain.FileFilter, *vaultsdk.APIError) {
	q := r.URL.Query()
	filter := domain.FileFilter{Query: q.Get("q")}

	if t := q.Get("type"); t != "" && t != "all" {
		filter.Type = domain.FileType(t)
		if !filter.Type.Valid() {
			return filter, vaultsdk.ErrInvalidRequest.WithDescription("type must be one of Document, Spreadsheet, Presentation")
		}
	}

	if enc := q.Get("encrypted"); enc != "" && enc != "all" {
		b, err := strconv.ParseBool(enc)
		if err != nil {
			return filter, vaultsdk.ErrInvalidRequest.WithDescription("encrypted must be true or false")
		}
		filter.Encrypted = &b
	}
	return filter, nil
}

// HandleList handles GET /v1/files
//
//	@Summary		List Files
//	@Description	Lists the session's files, newest first. Filters are combined with AND.
//	@Tags			Files
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q			query		string					false	"Case-insensitive name search"
//	@Param			type		query		string					false	"Document, Spreadsheet or Presentation"
//	@Param			encrypted	query		bool					false	"Only encrypted (true) or unencrypted (false) files"
//	@Success		200			{object}	vaultsdk.FilesResponse	"files"
//	@Failure		400			{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files [get].
func (h *FilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter, apiErr := parseFileFilter(r)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	files, err := h.FileService.List(r.Context(), httpx.SessionID(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFilesResponse(files))
}

// HandleEncrypt handles POST /v1/files/{id}/encrypt
//
//	@Summary		Encrypt File
//	@Description	Marks the file encrypted with the session's configured encryption type.
//	@Tags			Files
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"File ID"
//	@Success		200	{object}	vaultsdk.FileResponse	"updated file"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files/{id}/encrypt [post].
func (h *FilesHandler) HandleEncrypt(w http.ResponseWriter, r *http.Request) {
	f, err := h.FileService.Encrypt(r.Context(), httpx.SessionID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFileResponse(f))
}

// HandleShare handles POST /v1/files/{id}/share
//
//	@Summary		Toggle Sharing
//	@Description	Flips the file's shared flag.
//	@Tags			Files
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"File ID"
//	@Success		200	{object}	vaultsdk.FileResponse	"updated file"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files/{id}/share [post].
func (h *FilesHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	f, err := h.FileService.ToggleShare(r.Context(), httpx.SessionID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFileResponse(f))
}

// HandleDownload handles POST /v1/files/{id}/download
//
//	@Summary		Download File
//	@Description	Simulates a secure download. Nothing is transferred, a notice and a feed event are recorded.
//	@Tags			Files
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"File ID"
//	@Success		200	{object}	vaultsdk.FileResponse	"downloaded file"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files/{id}/download [post].
func (h *FilesHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	f, err := h.FileService.Download(r.Context(), httpx.SessionID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFileResponse(f))
}

// HandleDelete handles DELETE /v1/files/{id}
//
//	@Summary		Delete File
//	@Description	Removes the file from the session's registry.
//	@Tags			Files
//	@Security		BearerAuth
//	@Param			id	path	string	true	"File ID"
//	@Success		204	"No Content"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files/{id} [delete].
func (h *FilesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.FileService.Delete(r.Context(), httpx.SessionID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleBatch handles POST /v1/files/batch
//
//	@Summary		Batch File Operation
//	@Description	Applies encrypt, share or delete to several files. Unknown ids are reported, not fatal.
//	@Tags			Files
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		vaultsdk.BatchRequest	true	"action and ids"
//	@Success		200		{object}	vaultsdk.BatchResponse	"changed, unchanged and missing ids"
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/files/batch [post].
func (h *FilesHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.BatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.FileService.Batch(r.Context(), httpx.SessionID(r.Context()), domain.BatchAction(req.Action), req.IDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBatchResponse(res))
}
