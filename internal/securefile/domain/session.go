package domain

import "time"

// ActivitySignal is a user interaction that counts as "still here".
type ActivitySignal string

const (
	SignalPointer ActivitySignal = "pointer"
	SignalKey     ActivitySignal = "key"
	SignalClick   ActivitySignal = "click"
)

// Valid reports whether s is one of the recognised activity signals.
func (s ActivitySignal) Valid() bool {
	switch s {
	case SignalPointer, SignalKey, SignalClick:
		return true
	}
	return false
}

// SessionState is a snapshot of one signed-in browser's inactivity countdown.
type SessionState struct {
	ID               string
	Username         string
	RemainingSeconds int
	ExpiringSoon     bool
	LoggedOut        bool
	StartedAt        time.Time
	LastActivityAt   time.Time
}
