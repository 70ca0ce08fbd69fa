package service

import (
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/pkg/schedule"
)

// SessionMonitor is the inactivity countdown of one signed-in session.
//
// The countdown starts at the ceiling and loses one second per tick. Any
// activity signal puts it back to the ceiling. When it reaches the warning
// threshold the warning callback fires once for that descent; at zero the
// session is logged out, the ticker stops and the logout callback fires
// exactly once. Callbacks run on the ticker goroutine without the monitor
// lock held, so they may call back into the monitor.
type SessionMonitor struct {
	mu sync.Mutex

	ceiling int
	warnAt  int

	remaining    int
	expiring     bool
	loggedOut    bool
	stopped      bool
	lastActivity time.Time

	onWarning func()
	onLogout  func()

	ticker *schedule.Ticker
}

// NewSessionMonitor returns a monitor counting down from ceiling seconds.
// Either callback may be nil.
func NewSessionMonitor(ceiling, warnAt int, onWarning, onLogout func()) *SessionMonitor {
	if ceiling <= 0 {
		ceiling = 900
	}
	return &SessionMonitor{
		ceiling:      ceiling,
		warnAt:       warnAt,
		remaining:    ceiling,
		lastActivity: time.Now().UTC(),
		onWarning:    onWarning,
		onLogout:     onLogout,
	}
}

// Start ticks the countdown once per interval until logout or Stop.
func (m *SessionMonitor) Start(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ticker != nil || m.stopped || m.loggedOut {
		return
	}
	m.ticker = schedule.Every(interval, m.Tick)
}

// Tick advances the countdown by one second.
func (m *SessionMonitor) Tick() {
	m.mu.Lock()
	if m.loggedOut || m.stopped {
		m.mu.Unlock()
		return
	}

	m.remaining--

	var warn, logout bool
	// <= rather than == so a ceiling at or under the threshold still warns.
	if m.warnAt > 0 && m.remaining > 0 && m.remaining <= m.warnAt && !m.expiring {
		m.expiring = true
		warn = true
	}
	if m.remaining <= 0 {
		m.remaining = 0
		m.loggedOut = true
		m.ticker.Stop()
		logout = true
	}
	m.mu.Unlock()

	if warn && m.onWarning != nil {
		m.onWarning()
	}
	if logout && m.onLogout != nil {
		m.onLogout()
	}
}

// Touch resets the countdown in response to user activity. Signals that
// arrive after logout are ignored.
func (m *SessionMonitor) Touch(signal domain.ActivitySignal) error {
	if !signal.Valid() {
		return ErrUnknownSignal
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loggedOut {
		return nil
	}
	m.remaining = m.ceiling
	m.expiring = false
	m.lastActivity = time.Now().UTC()
	return nil
}

// Stop cancels the countdown without logging the session out.
func (m *SessionMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped = true
	m.ticker.Stop()
}

func (m *SessionMonitor) LoggedOut() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggedOut
}

// fill copies the countdown into st.
func (m *SessionMonitor) fill(st *domain.SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st.RemainingSeconds = m.remaining
	st.ExpiringSoon = m.expiring
	st.LoggedOut = m.loggedOut
	st.LastActivityAt = m.lastActivity
}
