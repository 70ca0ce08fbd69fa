package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/pkg/idx"
	"github.com/aussiebroadwan/securefile/pkg/schedule"
)

const DefaultThreatAlertDelay = 500 * time.Millisecond

type threatEntry struct {
	alert domain.ThreatAlert
	timer *schedule.Ticker
}

// ThreatService stages a fake intrusion for the dashboard: the alert
// details come back straight away, the "Security Alert" notice and the
// feed event land after AlertDelay.
type ThreatService struct {
	Sessions *SessionService
	Feed     *FeedService
	Logger   *slog.Logger
	Metrics  *metrics.Metrics

	AlertDelay time.Duration

	mu     sync.Mutex
	alerts map[string]*threatEntry
}

func NewThreatService(sessions *SessionService, feed *FeedService, logger *slog.Logger, m *metrics.Metrics) *ThreatService {
	return &ThreatService{
		Sessions:   sessions,
		Feed:       feed,
		Logger:     logger,
		Metrics:    m,
		AlertDelay: DefaultThreatAlertDelay,
		alerts:     make(map[string]*threatEntry),
	}
}

func (s *ThreatService) SessionStarted(context.Context, string) error { return nil }

func (s *ThreatService) SessionEnded(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.alerts {
		if e.alert.SessionID == sessionID {
			e.timer.Stop()
			delete(s.alerts, id)
		}
	}
}

// Simulate raises a new alert for the session.
func (s *ThreatService) Simulate(ctx context.Context, sessionID string) (domain.ThreatAlert, error) {
	if !s.Sessions.Alive(sessionID) {
		return domain.ThreatAlert{}, ErrSessionNotFound
	}

	alert := domain.NewSimulatedThreat(idx.New().String(), sessionID, time.Now().UTC())
	e := &threatEntry{alert: alert}

	s.mu.Lock()
	s.alerts[alert.ID] = e
	e.timer = schedule.After(s.AlertDelay, func() { s.raise(alert) })
	s.mu.Unlock()

	s.Metrics.Threat("simulated")
	s.Logger.Info("threat simulated", "alert_id", alert.ID, "session_id", sessionID)
	return alert, nil
}

func (s *ThreatService) raise(alert domain.ThreatAlert) {
	_ = s.Sessions.Notify(alert.SessionID, domain.NewNotice(
		"Security Alert",
		"Unauthorized access attempt detected and blocked",
		domain.NoticeDestructive,
	))

	if s.Feed == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.Feed.Record(ctx, domain.SecurityEvent{
		Type:        domain.EventThreat,
		Description: "Unauthorized access attempt blocked (" + alert.Target + ")",
		Severity:    domain.SeverityHigh,
		IP:          alert.SourceIP,
	})
	if err != nil {
		s.Logger.Warn("failed to record threat event", "alert_id", alert.ID, "error", err)
	}
}

// Get returns one of the session's alerts.
func (s *ThreatService) Get(sessionID, id string) (domain.ThreatAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.alerts[id]
	if !ok || e.alert.SessionID != sessionID {
		return domain.ThreatAlert{}, ErrThreatNotFound
	}
	return e.alert, nil
}

// Block answers the alert with the "Block IP" response.
func (s *ThreatService) Block(_ context.Context, sessionID, id string) (domain.ThreatAlert, error) {
	s.mu.Lock()
	e, ok := s.alerts[id]
	if !ok || e.alert.SessionID != sessionID {
		s.mu.Unlock()
		return domain.ThreatAlert{}, ErrThreatNotFound
	}
	first := !e.alert.Responded
	e.alert.Responded = true
	alert := e.alert
	s.mu.Unlock()

	if first {
		_ = s.Sessions.Notify(sessionID, domain.NewNotice(
			"Security Response Initiated",
			"Additional security measures have been activated",
			domain.NoticeDefault,
		))
		s.Metrics.Threat("blocked")
		s.Logger.Info("threat source blocked", "alert_id", id, "source_ip", alert.SourceIP)
	}
	return alert, nil
}

// Dismiss closes the alert. A notice that has not fired yet is cancelled.
func (s *ThreatService) Dismiss(sessionID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.alerts[id]
	if !ok || e.alert.SessionID != sessionID {
		return ErrThreatNotFound
	}
	e.timer.Stop()
	delete(s.alerts, id)
	return nil
}

// StopAll cancels every pending alert. Used on shutdown.
func (s *ThreatService) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.alerts {
		e.timer.Stop()
		delete(s.alerts, id)
	}
}
