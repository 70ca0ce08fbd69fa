package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
)

// SettingsService holds each session's security settings. They start at
// the defaults and are dropped with the session.
type SettingsService struct {
	Sessions *SessionService
	Feed     *FeedService
	Logger   *slog.Logger

	mu        sync.Mutex
	bySession map[string]domain.Settings
}

func NewSettingsService(sessions *SessionService, feed *FeedService, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		Sessions:  sessions,
		Feed:      feed,
		Logger:    logger,
		bySession: make(map[string]domain.Settings),
	}
}

func (s *SettingsService) SessionStarted(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySession[sessionID] = domain.DefaultSettings()
	return nil
}

func (s *SettingsService) SessionEnded(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bySession, sessionID)
}

// Get returns the session's settings, or the defaults for a session that
// has none.
func (s *SettingsService) Get(sessionID string) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.bySession[sessionID]; ok {
		return st
	}
	return domain.DefaultSettings()
}

// Update validates and stores new settings for the session.
func (s *SettingsService) Update(ctx context.Context, sessionID string, next domain.Settings) (domain.Settings, error) {
	if err := next.Validate(); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	if _, ok := s.bySession[sessionID]; !ok {
		s.mu.Unlock()
		return domain.Settings{}, ErrSessionNotFound
	}
	s.bySession[sessionID] = next
	s.mu.Unlock()

	_ = s.Sessions.Notify(sessionID, domain.NewNotice(
		"Settings Saved",
		"Your security settings have been updated",
		domain.NoticeDefault,
	))

	if s.Feed != nil {
		user := ""
		if st, err := s.Sessions.State(sessionID); err == nil {
			user = st.Username
		}
		_, err := s.Feed.Record(ctx, domain.SecurityEvent{
			Type:        domain.EventAdmin,
			Description: "Security settings updated",
			Severity:    domain.SeverityMedium,
			User:        user,
		})
		if err != nil {
			return next, fmt.Errorf("failed to record settings event: %w", err)
		}
	}

	s.Logger.Info("settings updated", "session_id", sessionID, "encryption_type", next.EncryptionType, "threat_level", next.ThreatLevel)
	return next, nil
}
