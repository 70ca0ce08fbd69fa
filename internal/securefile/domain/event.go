package domain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventLogin      EventType = "login"
	EventFileAccess EventType = "file_access"
	EventEncryption EventType = "encryption"
	EventThreat     EventType = "threat"
	EventAdmin      EventType = "admin"
)

// EventTypes lists every event type in the order the generator draws from.
var EventTypes = []EventType{EventLogin, EventFileAccess, EventEncryption, EventThreat, EventAdmin}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, et := range EventTypes {
		if t == et {
			return true
		}
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severities lists every severity in the order the generator draws from.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// GeneratedDescriptions are the texts synthetic feed events pick from.
var GeneratedDescriptions = []string{
	"User session started",
	"File downloaded",
	"Password changed",
	"New device authenticated",
	"File sharing permissions updated",
	"Encryption key rotated",
	"Suspicious IP address blocked",
	"File access attempt blocked",
}

// DemoUser is the account name attached to most simulated events.
const DemoUser = "admin@example.com"

// SecurityEvent is one line of the activity feed. IP and User are optional.
type SecurityEvent struct {
	ID          string
	Type        EventType
	Description string
	Timestamp   time.Time
	Severity    Severity
	IP          string
	User        string
}

// SeedEvents returns the initial feed, newest first, timestamped relative to now.
func SeedEvents(now time.Time) []SecurityEvent {
	return []SecurityEvent{
		{Type: EventLogin, Description: "Successful login", Timestamp: now.Add(-5 * time.Minute), Severity: SeverityLow, IP: "192.168.1.1", User: DemoUser},
		{Type: EventFileAccess, Description: "Financial_Data.xlsx accessed", Timestamp: now.Add(-30 * time.Minute), Severity: SeverityLow, User: DemoUser},
		{Type: EventEncryption, Description: "Project_Report.docx encrypted with AES-256", Timestamp: now.Add(-time.Hour), Severity: SeverityLow, User: DemoUser},
		{Type: EventThreat, Description: "Failed login attempt (3 consecutive failures)", Timestamp: now.Add(-2 * time.Hour), Severity: SeverityMedium, IP: "203.0.113.42"},
		{Type: EventAdmin, Description: "Security settings updated", Timestamp: now.Add(-5 * time.Hour), Severity: SeverityMedium, User: DemoUser},
		{Type: EventThreat, Description: "Unusual file access pattern detected", Timestamp: now.Add(-24 * time.Hour), Severity: SeverityHigh, IP: "198.51.100.23", User: DemoUser},
	}
}

// RelativeTime renders how long ago ts was: "Just now", "5m ago", "2h ago", "1d ago".
func RelativeTime(now, ts time.Time) string {
	mins := int(now.Sub(ts) / time.Minute)
	if mins < 1 {
		return "Just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}
