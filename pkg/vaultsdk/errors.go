package vaultsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/securefile/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeFlowNotFound     = "flow_not_found"
	ErrorCodeSessionNotFound  = "session_not_found"
	ErrorCodeUnknownSignal    = "unknown_signal"
	ErrorCodeNoFileSelected   = "no_file_selected"
	ErrorCodeInvalidSettings  = "invalid_settings"
	ErrorCodeRequestCancelled = "request_cancelled"
	ErrorCodeServerError      = "server_error"
)

// ============================================================================
// APIError - shared error type
// ============================================================================

// APIError is the JSON error body every endpoint returns. The server writes
// it with WriteError and the SDK hands it back to callers as an error.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is a stable machine-readable error code (e.g., "not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on Code so callers can write errors.Is(err, vaultsdk.ErrNotFound)
// against errors decoded from a response.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(description string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: description}
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "a live session is required",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrFlowNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeFlowNotFound,
		Description: "sign-in flow not found or expired",
	}

	ErrSessionNotFound = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeSessionNotFound,
		Description: "session not found or logged out",
	}

	ErrUnknownSignal = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnknownSignal,
		Description: "signal must be one of pointer, key, click",
	}

	// ErrNoFileSelected carries the upload dialog's own wording.
	ErrNoFileSelected = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeNoFileSelected,
		Description: "Please select a file to upload",
	}

	ErrInvalidSettings = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeInvalidSettings,
		Description: "one or more settings are invalid",
	}

	// ErrRequestCancelled is returned when the client went away during a
	// simulated delay.
	ErrRequestCancelled = &APIError{
		StatusCode:  499,
		Code:        ErrorCodeRequestCancelled,
		Description: "request cancelled",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with the given status code, error code, and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
