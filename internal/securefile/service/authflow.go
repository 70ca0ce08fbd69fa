package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/schedule"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const DefaultAuthLatency = 1500 * time.Millisecond

// StepResult is the outcome of one submitted sign-in step.
type StepResult struct {
	Flow     domain.AuthFlow
	Advanced bool

	// CodeMatchesDemo tells the student whether the code they typed was the
	// demo authenticator's current value. It never affects the outcome.
	CodeMatchesDemo bool

	// Set once the flow is authenticated.
	Session        *domain.SessionState
	Token          string
	TokenExpiresAt time.Time
}

// AuthFlowService walks the simulated two-step sign-in. No credential is
// ever checked: a filled-in password step and any six-character code are
// enough.
type AuthFlowService struct {
	Sessions *SessionService
	Feed     *FeedService
	Signer   jwtx.Signer
	Logger   *slog.Logger
	Metrics  *metrics.Metrics

	Issuer   string
	Latency  time.Duration
	TokenTTL time.Duration

	mu    sync.Mutex
	flows map[string]*domain.AuthFlow
}

func NewAuthFlowService(sessions *SessionService, feed *FeedService, signer jwtx.Signer, logger *slog.Logger, m *metrics.Metrics, issuer string, latency time.Duration) *AuthFlowService {
	if latency < 0 {
		latency = DefaultAuthLatency
	}

	return &AuthFlowService{
		Sessions: sessions,
		Feed:     feed,
		Signer:   signer,
		Logger:   logger,
		Metrics:  m,
		Issuer:   issuer,
		Latency:  latency,
		TokenTTL: jwtx.DefaultSessionTokenTTL,
		flows:    make(map[string]*domain.AuthFlow),
	}
}

// Begin opens a flow on the password step with its own demo authenticator
// enrollment.
func (s *AuthFlowService) Begin(ctx context.Context) (domain.AuthFlow, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: domain.DemoUser,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.AuthFlow{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	now := time.Now().UTC()
	f := &domain.AuthFlow{
		ID:         uuid.NewString(),
		Step:       domain.StepAwaitingPassword,
		TOTPSecret: key.Secret(),
		TOTPURL:    key.URL(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mu.Lock()
	s.flows[f.ID] = f
	s.mu.Unlock()

	slogx.FromContextOr(ctx, s.Logger).Debug("auth flow started", "flow_id", f.ID)
	return *f, nil
}

// Get returns a copy of the flow.
func (s *AuthFlowService) Get(flowID string) (domain.AuthFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[flowID]
	if !ok {
		return domain.AuthFlow{}, ErrFlowNotFound
	}
	return *f, nil
}

// DemoCode returns the flow's current authenticator code, shown on the
// info panel so the student has something to type.
func (s *AuthFlowService) DemoCode(flowID string) (string, error) {
	f, err := s.Get(flowID)
	if err != nil {
		return "", err
	}
	code, err := totp.GenerateCode(f.TOTPSecret, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to generate demo code: %w", err)
	}
	return code, nil
}

// SubmitPassword advances the flow to the code step once both fields are
// filled in. Nothing is checked against a credential store.
func (s *AuthFlowService) SubmitPassword(ctx context.Context, flowID, username, password string) (StepResult, error) {
	if _, err := s.Get(flowID); err != nil {
		return StepResult{}, err
	}
	if err := schedule.Sleep(ctx, s.Latency); err != nil {
		return StepResult{}, err
	}

	s.mu.Lock()
	f, ok := s.flows[flowID]
	if !ok {
		s.mu.Unlock()
		return StepResult{}, ErrFlowNotFound
	}

	advanced := false
	if f.Step == domain.StepAwaitingPassword && domain.PasswordStepComplete(username, password) {
		f.Step = domain.StepAwaitingCode
		f.Username = username
		f.UpdatedAt = time.Now().UTC()
		advanced = true
	}
	res := StepResult{Flow: *f, Advanced: advanced}
	s.mu.Unlock()

	s.Metrics.AuthStep(string(domain.StepAwaitingPassword), advanced)
	slogx.FromContextOr(ctx, s.Logger).Info("password step submitted", "flow_id", flowID, "advanced", advanced)
	return res, nil
}

// SubmitCode authenticates the flow once a six-character code arrives,
// starts the session and issues its token.
func (s *AuthFlowService) SubmitCode(ctx context.Context, flowID, code string) (StepResult, error) {
	if _, err := s.Get(flowID); err != nil {
		return StepResult{}, err
	}
	if err := schedule.Sleep(ctx, s.Latency); err != nil {
		return StepResult{}, err
	}

	s.mu.Lock()
	f, ok := s.flows[flowID]
	if !ok {
		s.mu.Unlock()
		return StepResult{}, ErrFlowNotFound
	}
	if f.Step != domain.StepAwaitingCode || !domain.CodeStepComplete(code) {
		res := StepResult{Flow: *f}
		s.mu.Unlock()
		s.Metrics.AuthStep(string(domain.StepAwaitingCode), false)
		return res, nil
	}

	// Claim the transition before unlocking so a concurrent submit can't
	// start a second session.
	f.Step = domain.StepAuthenticated
	username, secret := f.Username, f.TOTPSecret
	s.mu.Unlock()

	res, err := s.authenticate(ctx, username)
	if err != nil {
		s.mu.Lock()
		f.Step = domain.StepAwaitingCode
		s.mu.Unlock()
		return StepResult{}, err
	}
	res.CodeMatchesDemo = totp.Validate(code, secret)

	s.mu.Lock()
	f.SessionID = res.Session.ID
	f.UpdatedAt = time.Now().UTC()
	res.Flow = *f
	s.mu.Unlock()

	s.Metrics.AuthStep(string(domain.StepAwaitingCode), true)
	slogx.FromContextOr(ctx, s.Logger).Info("auth flow completed",
		"flow_id", flowID,
		"session_id", res.Session.ID,
		"code_matches_demo", res.CodeMatchesDemo,
	)
	return res, nil
}

func (s *AuthFlowService) authenticate(ctx context.Context, username string) (StepResult, error) {
	sess, err := s.Sessions.Start(ctx, username)
	if err != nil {
		return StepResult{}, err
	}

	claims := jwtx.NewSessionClaims(sess.ID, username, s.Issuer, s.TokenTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		_ = s.Sessions.End(ctx, sess.ID)
		return StepResult{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	if s.Feed != nil {
		_, err := s.Feed.Record(ctx, domain.SecurityEvent{
			Type:        domain.EventLogin,
			Description: "Successful login",
			Severity:    domain.SeverityLow,
			User:        username,
		})
		if err != nil {
			slogx.FromContextOr(ctx, s.Logger).Warn("failed to record login event", "error", err)
		}
	}

	return StepResult{
		Advanced:       true,
		Session:        &sess,
		Token:          token,
		TokenExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// PruneFlows forgets flows untouched since cutoff.
func (s *AuthFlowService) PruneFlows(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, f := range s.flows {
		if f.UpdatedAt.Before(cutoff) {
			delete(s.flows, id)
			n++
		}
	}
	return n
}
