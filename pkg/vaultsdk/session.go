package vaultsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Session is a signed-in SecureFile session. Every call counts as server
// traffic but not as user activity; call Touch to keep the countdown up.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the session token.
func (s *Session) Token() string { return s.token }

func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

func (s *Session) sendJSON(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

func (s *Session) sendNoContent(ctx context.Context, method, path string) error {
	resp, err := s.client.doRequest(ctx, method, path, s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Session
// ============================================================================

// State returns the inactivity countdown.
func (s *Session) State(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.getJSON(ctx, "/v1/session", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Touch reports user activity and returns the reset countdown.
func (s *Session) Touch(ctx context.Context, signal string) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/session/activity", ActivityRequest{Signal: signal}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Notices drains the pending notices.
func (s *Session) Notices(ctx context.Context) ([]NoticeResponse, error) {
	var out NoticesResponse
	if err := s.getJSON(ctx, "/v1/session/notices", &out); err != nil {
		return nil, err
	}
	return out.Notices, nil
}

// Logout ends the session. The session is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	return s.sendNoContent(ctx, http.MethodDelete, "/v1/session")
}

// ============================================================================
// Files
// ============================================================================

func (s *Session) ListFiles(ctx context.Context, filter FileFilter) ([]FileResponse, error) {
	q := url.Values{}
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Encrypted != nil {
		q.Set("encrypted", strconv.FormatBool(*filter.Encrypted))
	}

	path := "/v1/files"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out FilesResponse
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

func (s *Session) fileAction(ctx context.Context, id, action string) (*FileResponse, error) {
	var out FileResponse
	path := "/v1/files/" + url.PathEscape(id) + "/" + action
	if err := s.sendJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) EncryptFile(ctx context.Context, id string) (*FileResponse, error) {
	return s.fileAction(ctx, id, "encrypt")
}

// ToggleShare flips the file's shared flag.
func (s *Session) ToggleShare(ctx context.Context, id string) (*FileResponse, error) {
	return s.fileAction(ctx, id, "share")
}

func (s *Session) DownloadFile(ctx context.Context, id string) (*FileResponse, error) {
	return s.fileAction(ctx, id, "download")
}

func (s *Session) DeleteFile(ctx context.Context, id string) error {
	return s.sendNoContent(ctx, http.MethodDelete, "/v1/files/"+url.PathEscape(id))
}

// Batch applies "encrypt", "share" or "delete" to every id.
func (s *Session) Batch(ctx context.Context, action string, ids []string) (*BatchResponse, error) {
	var out BatchResponse
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/files/batch", BatchRequest{Action: action, IDs: ids}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Uploads
// ============================================================================

func (s *Session) StartUpload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	var out UploadResponse
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/uploads", req, &out, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetUpload(ctx context.Context, id string) (*UploadResponse, error) {
	var out UploadResponse
	if err := s.getJSON(ctx, "/v1/uploads/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CancelUpload(ctx context.Context, id string) error {
	return s.sendNoContent(ctx, http.MethodDelete, "/v1/uploads/"+url.PathEscape(id))
}

// ============================================================================
// Security
// ============================================================================

// Events returns the activity feed, newest first. An empty eventType
// returns every type.
func (s *Session) Events(ctx context.Context, eventType string) ([]EventResponse, error) {
	path := "/v1/events"
	if eventType != "" {
		path += "?type=" + url.QueryEscape(eventType)
	}

	var out EventsResponse
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (s *Session) SimulateThreat(ctx context.Context) (*ThreatResponse, error) {
	var out ThreatResponse
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/threats/simulate", nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) BlockThreat(ctx context.Context, id string) (*ThreatResponse, error) {
	var out ThreatResponse
	path := "/v1/threats/" + url.PathEscape(id) + "/block"
	if err := s.sendJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DismissThreat(ctx context.Context, id string) error {
	return s.sendNoContent(ctx, http.MethodDelete, "/v1/threats/"+url.PathEscape(id))
}

func (s *Session) GetSettings(ctx context.Context) (*SettingsBody, error) {
	var out SettingsBody
	if err := s.getJSON(ctx, "/v1/settings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateSettings(ctx context.Context, settings SettingsBody) (*SettingsBody, error) {
	var out SettingsBody
	if err := s.sendJSON(ctx, http.MethodPut, "/v1/settings", settings, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Tutorial
// ============================================================================

func (s *Session) Tutorial(ctx context.Context) ([]TutorialQuestionResponse, error) {
	var out TutorialResponse
	if err := s.getJSON(ctx, "/v1/tutorial", &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (s *Session) AnswerTutorial(ctx context.Context, questionID, optionID string) (*TutorialAnswerResponse, error) {
	var out TutorialAnswerResponse
	req := TutorialAnswerRequest{QuestionID: questionID, OptionID: optionID}
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/tutorial/answers", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CompleteTutorial(ctx context.Context) error {
	return s.sendNoContent(ctx, http.MethodPost, "/v1/tutorial/complete")
}
