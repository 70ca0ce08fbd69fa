package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
	"github.com/aussiebroadwan/securefile/pkg/idx"
	"github.com/aussiebroadwan/securefile/pkg/schedule"
)

const (
	DefaultFeedInterval = 30 * time.Second
	DefaultFeedCapacity = 20
)

// FeedService keeps the shared security activity feed: a fixed seed, one
// synthetic event per interval and events recorded by other services. The
// feed never holds more than Capacity events.
type FeedService struct {
	Store    store.Store
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Interval time.Duration
	Capacity int

	// Rand drives the synthetic events. Tests pass a seeded source.
	Rand *rand.Rand
	Now  func() time.Time

	mu     sync.Mutex
	ticker *schedule.Ticker
}

func NewFeedService(st store.Store, logger *slog.Logger, m *metrics.Metrics, interval time.Duration, capacity int) *FeedService {
	if interval <= 0 {
		interval = DefaultFeedInterval
	}
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}

	return &FeedService{
		Store:    st,
		Logger:   logger,
		Metrics:  m,
		Interval: interval,
		Capacity: capacity,
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Seed fills an empty feed with the demo history. A feed that already has
// events is left alone.
func (s *FeedService) Seed(ctx context.Context) error {
	n, err := s.Store.Events().CountEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if n > 0 {
		return nil
	}

	seed := domain.SeedEvents(s.Now())
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Oldest first so the newest seed ends up at the head.
		for i := len(seed) - 1; i >= 0; i-- {
			e := seed[i]
			e.ID = idx.NewAt(e.Timestamp).String()
			if err := tx.Events().AppendEvent(ctx, e); err != nil {
				return fmt.Errorf("failed to seed event: %w", err)
			}
		}
		_, err := tx.Events().TrimEvents(ctx, s.Capacity)
		return err
	})
}

// Start generates one event per Interval until Stop.
func (s *FeedService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return
	}
	s.ticker = schedule.Every(s.Interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := s.Generate(ctx); err != nil {
			s.Logger.Error("failed to generate security event", "error", err)
		}
	})
	s.Logger.Info("event feed started", "interval", s.Interval, "capacity", s.Capacity)
}

// Stop halts generation and waits for an in-flight event to land.
func (s *FeedService) Stop() {
	s.mu.Lock()
	t := s.ticker
	s.ticker = nil
	s.mu.Unlock()

	if t == nil {
		return
	}
	t.Stop()
	<-t.Done()
	s.Logger.Info("event feed stopped")
}

// Running reports whether the generator ticker is active.
func (s *FeedService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

// Synthesize draws a random event without recording it.
func (s *FeedService) Synthesize() domain.SecurityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.Rand
	e := domain.SecurityEvent{
		Type:        domain.EventTypes[r.IntN(len(domain.EventTypes))],
		Description: domain.GeneratedDescriptions[r.IntN(len(domain.GeneratedDescriptions))],
		Timestamp:   s.Now(),
		Severity:    domain.Severities[r.IntN(len(domain.Severities))],
		IP:          fmt.Sprintf("192.168.1.%d", r.IntN(255)),
	}
	if r.Float64() > 0.3 {
		e.User = domain.DemoUser
	}
	return e
}

// Generate records one synthetic event.
func (s *FeedService) Generate(ctx context.Context) (domain.SecurityEvent, error) {
	return s.Record(ctx, s.Synthesize())
}

// Record prepends e to the feed and drops whatever falls past Capacity.
// A missing id or timestamp is filled in.
func (s *FeedService) Record(ctx context.Context, e domain.SecurityEvent) (domain.SecurityEvent, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = s.Now()
	}
	if e.ID == "" {
		e.ID = idx.NewAt(e.Timestamp).String()
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Events().AppendEvent(ctx, e); err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
		if _, err := tx.Events().TrimEvents(ctx, s.Capacity); err != nil {
			return fmt.Errorf("failed to trim feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.SecurityEvent{}, err
	}

	s.Metrics.Event(string(e.Type))
	s.Logger.Debug("security event recorded", "event_id", e.ID, "type", e.Type, "severity", e.Severity)
	return e, nil
}

// List returns the feed newest first, optionally only one event type.
func (s *FeedService) List(ctx context.Context, eventType domain.EventType) ([]domain.SecurityEvent, error) {
	events, err := s.Store.Events().ListEvents(ctx, eventType, s.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Trim enforces Capacity and reports how many events were dropped.
func (s *FeedService) Trim(ctx context.Context) (int64, error) {
	return s.Store.Events().TrimEvents(ctx, s.Capacity)
}
