package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/aussiebroadwan/securefile/pkg/vaultsdk"
)

// writeServiceError maps service and store errors onto API errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrFlowNotFound):
		vaultsdk.ErrFlowNotFound.WriteError(w)
	case errors.Is(err, service.ErrSessionNotFound):
		vaultsdk.ErrSessionNotFound.WriteError(w)
	case errors.Is(err, service.ErrUnknownSignal):
		vaultsdk.ErrUnknownSignal.WriteError(w)
	case errors.Is(err, service.ErrNoFileSelected):
		vaultsdk.ErrNoFileSelected.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		vaultsdk.ErrNotFound.WithDescription("file not found").WriteError(w)
	case errors.Is(err, service.ErrUploadNotFound):
		vaultsdk.ErrNotFound.WithDescription("upload not found").WriteError(w)
	case errors.Is(err, service.ErrThreatNotFound):
		vaultsdk.ErrNotFound.WithDescription("threat alert not found").WriteError(w)
	case errors.Is(err, service.ErrQuestionNotFound):
		vaultsdk.ErrNotFound.WithDescription("tutorial question not found").WriteError(w)
	case errors.Is(err, service.ErrOptionNotFound):
		vaultsdk.ErrInvalidRequest.WithDescription("unknown answer option").WriteError(w)
	case errors.Is(err, service.ErrInvalidBatch):
		vaultsdk.ErrInvalidRequest.WithDescription("action must be one of encrypt, share, delete").WriteError(w)
	case errors.Is(err, service.ErrInvalidEncryption):
		vaultsdk.ErrInvalidRequest.WithDescription("encryption must be one of aes-256, rsa-2048, none").WriteError(w)
	case errors.Is(err, domain.ErrInvalidSetting):
		vaultsdk.ErrInvalidSettings.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, context.Canceled):
		vaultsdk.ErrRequestCancelled.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		vaultsdk.ErrServerError.WriteError(w)
	}
}

func writeBadJSON(w http.ResponseWriter) {
	vaultsdk.ErrInvalidRequest.WithDescription("Invalid JSON in request body").WriteError(w)
}
