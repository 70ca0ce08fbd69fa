package domain

import "time"

// ThreatAlert is the simulated intrusion the dashboard pops up.
type ThreatAlert struct {
	ID         string
	SessionID  string
	Title      string
	Summary    string
	SourceIP   string
	Target     string
	Method     string
	Status     string
	DetectedAt time.Time
	Responded  bool
}

// NewSimulatedThreat builds the canned brute-force alert.
func NewSimulatedThreat(id, sessionID string, now time.Time) ThreatAlert {
	return ThreatAlert{
		ID:         id,
		SessionID:  sessionID,
		Title:      "Unauthorized Access Attempt",
		Summary:    "An unauthorized attempt to access encrypted files has been detected from IP 192.168.1.45.",
		SourceIP:   "192.168.1.45",
		Target:     "Financial_Data.xlsx",
		Method:     "Brute Force Attack",
		Status:     "Blocked",
		DetectedAt: now,
	}
}
