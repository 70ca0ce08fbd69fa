package vaultsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeServer answers just enough of the API for Login and a few session
// calls.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/flows", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, AuthFlowResponse{ID: "flow-1", Step: "awaiting_password"})
	})
	mux.HandleFunc("GET /v1/auth/flows/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "flow-1" {
			ErrFlowNotFound.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, AuthFlowResponse{ID: "flow-1", Step: "awaiting_code", DemoCode: "424242"})
	})
	mux.HandleFunc("POST /v1/auth/flows/{id}/password", func(w http.ResponseWriter, r *http.Request) {
		var req PasswordStepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ErrInvalidRequest.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, StepResponse{Advanced: req.Username != "" && req.Password != ""})
	})
	mux.HandleFunc("POST /v1/auth/flows/{id}/code", func(w http.ResponseWriter, r *http.Request) {
		var req CodeStepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code != "424242" {
			ErrInvalidRequest.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, StepResponse{Advanced: true, CodeMatchesDemo: true, Token: "tok"})
	})
	mux.HandleFunc("GET /v1/files", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			ErrUnauthorized.WriteError(w)
			return
		}
		if r.URL.Query().Get("q") != "report" || r.URL.Query().Get("encrypted") != "true" {
			ErrInvalidRequest.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, FilesResponse{Files: []FileResponse{{ID: "1", Name: "Project_Report.docx"}}})
	})
	mux.HandleFunc("DELETE /v1/session", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: "test"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin(t *testing.T) {
	t.Parallel()

	srv := fakeServer(t)
	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	session, err := client.Login(ctx, "student", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())

	yes := true
	files, err := session.ListFiles(ctx, FileFilter{Query: "report", Encrypted: &yes})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "Project_Report.docx", files[0].Name)

	require.NoError(t, session.Logout(ctx))

	t.Run("empty password never advances", func(t *testing.T) {
		_, err := client.Login(ctx, "student", "")
		require.Error(t, err)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := client.NewSession("nope").ListFiles(ctx, FileFilter{Query: "report", Encrypted: &yes})
		require.ErrorIs(t, err, ErrUnauthorized)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	health, err := client.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	_, err = client.GetReadiness(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
	require.Contains(t, apiErr.Description, "Bad Gateway")
}

func TestGetFlowNotFound(t *testing.T) {
	t.Parallel()

	srv := fakeServer(t)
	_, err := NewSDKClient(srv.URL).GetFlow(context.Background(), "missing")
	require.ErrorIs(t, err, ErrFlowNotFound)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestAPIErrorWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrNoFileSelected.WriteError(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, ErrorCodeNoFileSelected, body.Error)
	require.Equal(t, "Please select a file to upload", body.ErrorDescription)

	custom := ErrInvalidRequest.WithDescription("ids must not be empty")
	require.Equal(t, ErrInvalidRequest.StatusCode, custom.StatusCode)
	require.ErrorIs(t, custom, ErrInvalidRequest)
	require.NotEqual(t, ErrInvalidRequest.Description, custom.Description)
}
