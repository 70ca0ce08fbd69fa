package vaultsdk

import "time"

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the wire shape of an APIError.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the session token signing capability status
	Signer string `json:"signer"`

	// Feed reports whether the event generator is running
	Feed string `json:"feed"`
}

// ============================================================================
// Sign-in Flow Types
// ============================================================================

// AuthFlowResponse describes a sign-in flow. The TOTP fields are the demo
// authenticator enrollment shown on the info panel.
type AuthFlowResponse struct {
	ID       string `json:"id"`
	Step     string `json:"step"`
	Username string `json:"username,omitempty"`

	TOTPURL    string `json:"totp_url"`
	TOTPSecret string `json:"totp_secret"`

	// DemoCode is the authenticator's current code (only on GET)
	DemoCode string `json:"demo_code,omitempty"`
}

// PasswordStepRequest is the body of POST /v1/auth/flows/{id}/password.
type PasswordStepRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CodeStepRequest is the body of POST /v1/auth/flows/{id}/code. Either Code
// or the six single-character Digits may be sent; Digits wins when both are.
type CodeStepRequest struct {
	Code   string   `json:"code,omitempty"`
	Digits []string `json:"digits,omitempty"`
}

// StepResponse is returned by both step endpoints.
type StepResponse struct {
	Flow     AuthFlowResponse `json:"flow"`
	Advanced bool             `json:"advanced"`

	// CodeMatchesDemo is educational feedback only, it never blocks sign-in
	CodeMatchesDemo bool `json:"code_matches_demo"`

	// Only set once the flow is authenticated
	Session   *SessionResponse `json:"session,omitempty"`
	Token     string           `json:"token,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
}

// ============================================================================
// Session Types
// ============================================================================

// SessionResponse is the inactivity countdown of the signed-in session.
type SessionResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	RemainingSeconds int       `json:"remaining_seconds"`
	ExpiringSoon     bool      `json:"expiring_soon"`
	LoggedOut        bool      `json:"logged_out"`
	StartedAt        time.Time `json:"started_at"`
	LastActivityAt   time.Time `json:"last_activity_at"`
}

// ActivityRequest reports user activity: "pointer", "key" or "click".
type ActivityRequest struct {
	Signal string `json:"signal"`
}

// NoticeResponse is one toast-style notification.
type NoticeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

type NoticesResponse struct {
	Notices []NoticeResponse `json:"notices"`
}

// ============================================================================
// File Types
// ============================================================================

type FileResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Size         string `json:"size"`
	Encrypted    bool   `json:"encrypted"`
	Shared       bool   `json:"shared"`
	LastModified string `json:"last_modified"`
	Permissions  string `json:"permissions"`
}

type FilesResponse struct {
	Files []FileResponse `json:"files"`
}

// FileFilter are the query parameters of GET /v1/files. A nil Encrypted
// matches both.
type FileFilter struct {
	Query     string
	Type      string
	Encrypted *bool
}

// BatchRequest applies one action to several files.
type BatchRequest struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
}

type BatchResponse struct {
	Action    string   `json:"action"`
	Changed   []string `json:"changed"`
	Unchanged []string `json:"unchanged"`
	Missing   []string `json:"missing"`
}

// UploadRequest starts a simulated upload. An empty Encryption uses the
// session's configured encryption type.
type UploadRequest struct {
	FileName   string `json:"file_name"`
	SizeBytes  int64  `json:"size_bytes"`
	Encryption string `json:"encryption,omitempty"`
}

type UploadResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	Encryption string    `json:"encryption"`
	Progress   int       `json:"progress"`
	Done       bool      `json:"done"`
	FileID     string    `json:"file_id,omitempty"`
	StartedAt  time.Time `json:"started_at"`
}

// ============================================================================
// Security Types
// ============================================================================

type EventResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
	RelativeTime string    `json:"relative_time"`
	Severity     string    `json:"severity"`
	IP           string    `json:"ip,omitempty"`
	User         string    `json:"user,omitempty"`
}

type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

type ThreatResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	SourceIP   string    `json:"source_ip"`
	Target     string    `json:"target"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	DetectedAt time.Time `json:"detected_at"`
	Responded  bool      `json:"responded"`
}

// SettingsBody is both the response of GET and the body of PUT /v1/settings.
type SettingsBody struct {
	EncryptionType     string `json:"encryption_type"`
	KeyRotation        string `json:"key_rotation"`
	DefaultPermissions string `json:"default_permissions"`
	SessionTimeout     string `json:"session_timeout"`
	ThreatLevel        string `json:"threat_level"`
	NotificationMethod string `json:"notification_method"`
}

// ============================================================================
// Tutorial Types
// ============================================================================

type TutorialOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type TutorialQuestionResponse struct {
	ID      string                   `json:"id"`
	Title   string                   `json:"title"`
	Prompt  string                   `json:"prompt"`
	Options []TutorialOptionResponse `json:"options"`
}

type TutorialResponse struct {
	Questions []TutorialQuestionResponse `json:"questions"`
}

type TutorialAnswerRequest struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

type TutorialAnswerResponse struct {
	Correct bool   `json:"correct"`
	Verdict string `json:"verdict"`
	Detail  string `json:"detail"`
}
