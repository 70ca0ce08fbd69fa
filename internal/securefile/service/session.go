package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/google/uuid"
)

const (
	DefaultSessionTimeout = 15 * time.Minute
	DefaultSessionWarning = time.Minute

	endReasonLogout   = "logout"
	endReasonTimeout  = "timeout"
	endReasonShutdown = "shutdown"
)

// SessionHook lets other services keep per-session state (file registry,
// settings, uploads) in step with the session lifecycle.
type SessionHook interface {
	SessionStarted(ctx context.Context, sessionID string) error
	SessionEnded(ctx context.Context, sessionID string)
}

type sessionEntry struct {
	id        string
	username  string
	startedAt time.Time
	endedAt   time.Time
	ended     bool

	monitor *SessionMonitor
	notices []domain.Notice
}

// SessionService owns the session monitors, keyed by session id, and each
// session's queue of pending notices.
type SessionService struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Timeout time.Duration
	Warning time.Duration

	// TickInterval is how long one countdown second really takes. Tests
	// shrink it.
	TickInterval time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	hooks    []SessionHook
}

func NewSessionService(logger *slog.Logger, m *metrics.Metrics, timeout, warning time.Duration) *SessionService {
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	if warning < 0 {
		warning = DefaultSessionWarning
	}

	return &SessionService{
		Logger:       logger,
		Metrics:      m,
		Timeout:      timeout,
		Warning:      warning,
		TickInterval: time.Second,
		sessions:     make(map[string]*sessionEntry),
	}
}

// AddHooks registers hooks in the order they should run on start. They
// run in reverse order on end.
func (s *SessionService) AddHooks(hooks ...SessionHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hooks...)
}

func (s *SessionService) hookList() []SessionHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SessionHook(nil), s.hooks...)
}

// Start opens a session for username and starts its countdown.
func (s *SessionService) Start(ctx context.Context, username string) (domain.SessionState, error) {
	id := uuid.NewString()

	hooks := s.hookList()
	for i, h := range hooks {
		if err := h.SessionStarted(ctx, id); err != nil {
			for j := i - 1; j >= 0; j-- {
				hooks[j].SessionEnded(ctx, id)
			}
			return domain.SessionState{}, fmt.Errorf("failed to start session: %w", err)
		}
	}

	e := &sessionEntry{
		id:        id,
		username:  username,
		startedAt: time.Now().UTC(),
	}
	e.monitor = NewSessionMonitor(
		int(s.Timeout/time.Second),
		int(s.Warning/time.Second),
		func() { s.warn(id) },
		func() { s.expire(id) },
	)

	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()

	e.monitor.Start(s.TickInterval)
	s.Metrics.SessionStarted()
	s.Logger.Info("session started", "session_id", id, "username", username)

	return s.snapshot(e), nil
}

func (s *SessionService) warn(id string) {
	s.Metrics.SessionWarned()
	_ = s.Notify(id, domain.NewNotice(
		"Session Expiring Soon",
		fmt.Sprintf("Your session will expire in %s due to inactivity", expiresIn(min(s.Warning, s.Timeout))),
		domain.NoticeDestructive,
	))
}

// expiresIn renders d as "1 minute", "5 minutes" or "30 seconds".
func expiresIn(d time.Duration) string {
	unit, n := "second", int(d/time.Second)
	if d >= time.Minute && d%time.Minute == 0 {
		unit, n = "minute", int(d/time.Minute)
	}
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", n, unit)
}

func (s *SessionService) expire(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok || e.ended {
		s.mu.Unlock()
		return
	}
	e.ended = true
	e.endedAt = time.Now().UTC()
	s.mu.Unlock()

	s.runEndHooks(context.Background(), id)
	s.Metrics.SessionEnded(endReasonTimeout)
	s.Logger.Info("session timed out", "session_id", id)
}

func (s *SessionService) runEndHooks(ctx context.Context, id string) {
	hooks := s.hookList()
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i].SessionEnded(ctx, id)
	}
}

func (s *SessionService) get(id string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (s *SessionService) snapshot(e *sessionEntry) domain.SessionState {
	st := domain.SessionState{
		ID:        e.id,
		Username:  e.username,
		StartedAt: e.startedAt,
	}
	e.monitor.fill(&st)
	return st
}

// State reports the countdown of a session. A timed-out session keeps
// answering with LoggedOut set until it is reaped.
func (s *SessionService) State(id string) (domain.SessionState, error) {
	e, err := s.get(id)
	if err != nil {
		return domain.SessionState{}, err
	}
	return s.snapshot(e), nil
}

// Touch feeds an activity signal to the session's countdown.
func (s *SessionService) Touch(id string, signal domain.ActivitySignal) (domain.SessionState, error) {
	e, err := s.get(id)
	if err != nil {
		return domain.SessionState{}, err
	}
	if err := e.monitor.Touch(signal); err != nil {
		return domain.SessionState{}, fmt.Errorf("%w: %q", err, signal)
	}
	return s.snapshot(e), nil
}

// Alive reports whether the session exists and has not been logged out.
func (s *SessionService) Alive(id string) bool {
	e, err := s.get(id)
	if err != nil {
		return false
	}
	return !e.monitor.LoggedOut()
}

// End logs a session out explicitly and forgets it.
func (s *SessionService) End(ctx context.Context, id string) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	alreadyEnded := e.ended
	e.ended = true
	s.mu.Unlock()

	e.monitor.Stop()
	if alreadyEnded {
		return nil
	}

	s.runEndHooks(ctx, id)
	s.Metrics.SessionEnded(endReasonLogout)
	s.Logger.Info("session ended", "session_id", id)
	return nil
}

// Notify queues a notice for the session's next poll.
func (s *SessionService) Notify(id string, n domain.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	e.notices = append(e.notices, n)
	return nil
}

// DrainNotices returns and clears the pending notices, oldest first.
func (s *SessionService) DrainNotices(id string) ([]domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := e.notices
	e.notices = nil
	if out == nil {
		out = []domain.Notice{}
	}
	return out, nil
}

// ReapExpired forgets sessions that timed out before cutoff and reports
// how many were removed.
func (s *SessionService) ReapExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.sessions {
		if e.ended && e.endedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Count returns the number of sessions still counting down.
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.sessions {
		if !e.ended {
			n++
		}
	}
	return n
}

// StopAll stops every countdown without logging anyone out and releases
// the sessions' state. Used on shutdown.
func (s *SessionService) StopAll(ctx context.Context) {
	type stopping struct {
		entry   *sessionEntry
		pending bool
	}

	s.mu.Lock()
	list := make([]stopping, 0, len(s.sessions))
	for id, e := range s.sessions {
		list = append(list, stopping{entry: e, pending: !e.ended})
		e.ended = true
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, st := range list {
		st.entry.monitor.Stop()
		if !st.pending {
			continue
		}
		s.runEndHooks(ctx, st.entry.id)
		s.Metrics.SessionEnded(endReasonShutdown)
	}
	if len(list) > 0 {
		s.Logger.Info("sessions stopped", "count", len(list))
	}
}
