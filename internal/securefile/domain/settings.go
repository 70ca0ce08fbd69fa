package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSetting is returned when a settings value is not one of its options.
var ErrInvalidSetting = errors.New("invalid setting")

// EncryptionType is the (simulated) cipher applied to new uploads.
type EncryptionType string

const (
	EncryptionAES256  EncryptionType = "aes-256"
	EncryptionRSA2048 EncryptionType = "rsa-2048"
	EncryptionNone    EncryptionType = "none"
)

// Label is the upper-case name used in notices, e.g. "AES-256".
func (e EncryptionType) Label() string { return strings.ToUpper(string(e)) }

// Encrypts reports whether files stored with e count as encrypted.
func (e EncryptionType) Encrypts() bool { return e != EncryptionNone }

type KeyRotation string

const (
	KeyRotation30Days KeyRotation = "30-days"
	KeyRotation90Days KeyRotation = "90-days"
	KeyRotationManual KeyRotation = "manual"
)

// AccessLevel is the permission granted when a file is shared.
type AccessLevel string

const (
	AccessReadOnly   AccessLevel = "read-only"
	AccessReadWrite  AccessLevel = "read-write"
	AccessFullAccess AccessLevel = "full-access"
)

// SessionTimeout is displayed only, the countdown ceiling comes from config.
type SessionTimeout string

const (
	SessionTimeout5  SessionTimeout = "5-min"
	SessionTimeout15 SessionTimeout = "15-min"
	SessionTimeout30 SessionTimeout = "30-min"
	SessionTimeout60 SessionTimeout = "60-min"
)

type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

type NotificationMethod string

const (
	NotifyInApp NotificationMethod = "in-app"
	NotifyEmail NotificationMethod = "email"
	NotifyBoth  NotificationMethod = "both"
)

// Settings are the security preferences of one session.
type Settings struct {
	EncryptionType     EncryptionType
	KeyRotation        KeyRotation
	DefaultPermissions AccessLevel
	SessionTimeout     SessionTimeout
	ThreatLevel        ThreatLevel
	NotificationMethod NotificationMethod
}

// DefaultSettings are what a fresh session sees on the settings tab.
func DefaultSettings() Settings {
	return Settings{
		EncryptionType:     EncryptionAES256,
		KeyRotation:        KeyRotation90Days,
		DefaultPermissions: AccessReadWrite,
		SessionTimeout:     SessionTimeout15,
		ThreatLevel:        ThreatHigh,
		NotificationMethod: NotifyInApp,
	}
}

func oneOf[T ~string](field string, v T, options ...T) error {
	for _, o := range options {
		if v == o {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrInvalidSetting, field, v)
}

// Validate checks every field against its option list.
func (s Settings) Validate() error {
	return errors.Join(
		oneOf("encryption_type", s.EncryptionType, EncryptionAES256, EncryptionRSA2048, EncryptionNone),
		oneOf("key_rotation", s.KeyRotation, KeyRotation30Days, KeyRotation90Days, KeyRotationManual),
		oneOf("default_permissions", s.DefaultPermissions, AccessReadOnly, AccessReadWrite, AccessFullAccess),
		oneOf("session_timeout", s.SessionTimeout, SessionTimeout5, SessionTimeout15, SessionTimeout30, SessionTimeout60),
		oneOf("threat_level", s.ThreatLevel, ThreatLow, ThreatMedium, ThreatHigh),
		oneOf("notification_method", s.NotificationMethod, NotifyInApp, NotifyEmail, NotifyBoth),
	)
}
