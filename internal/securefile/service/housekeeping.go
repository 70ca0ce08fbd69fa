package service

import (
	"context"
	"log/slog"
	"time"
)

// DefaultFlowTTL is how long an unfinished sign-in flow is kept.
const DefaultFlowTTL = 30 * time.Minute

// HousekeepingService periodically forgets timed-out sessions, abandoned
// sign-in flows and feed overflow so the in-memory state can't grow
// without bound.
type HousekeepingService struct {
	Sessions *SessionService
	Flows    *AuthFlowService
	Feed     *FeedService
	Logger   *slog.Logger
	Interval time.Duration

	// SessionGrace keeps a timed-out session answerable (LoggedOut=true)
	// for a while so the dashboard can notice before it is reaped.
	SessionGrace time.Duration
	FlowTTL      time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(sessions *SessionService, flows *AuthFlowService, feed *FeedService, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &HousekeepingService{
		Sessions:     sessions,
		Flows:        flows,
		Feed:         feed,
		Logger:       logger,
		Interval:     interval,
		SessionGrace: interval,
		FlowTTL:      DefaultFlowTTL,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Cleanup(time.Now().UTC())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one pass as of now. Each step is independent, a failure in
// one won't stop the others.
func (s *HousekeepingService) Cleanup(now time.Time) {
	ctx := context.Background()

	reaped := 0
	if s.Sessions != nil {
		reaped = s.Sessions.ReapExpired(now.Add(-s.SessionGrace))
	}

	pruned := 0
	if s.Flows != nil {
		pruned = s.Flows.PruneFlows(now.Add(-s.FlowTTL))
	}

	var trimmed int64
	if s.Feed != nil {
		n, err := s.Feed.Trim(ctx)
		if err != nil {
			s.Logger.Error("failed to trim event feed", "error", err)
		}
		trimmed = n
	}

	if reaped+pruned > 0 || trimmed > 0 {
		s.Logger.Info("housekeeping cleanup completed",
			"sessions_reaped", reaped,
			"flows_pruned", pruned,
			"events_trimmed", trimmed,
		)
		return
	}
	s.Logger.Debug("housekeeping cleanup completed")
}
