package vaultsdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the SecureFile Edu service. It covers the
// public endpoints and signs in to create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client. The timeout leaves room for the
// simulated sign-in latency.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login walks the whole sign-in flow: password step, then the demo
// authenticator's current code.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	flow, err := c.BeginFlow(ctx)
	if err != nil {
		return nil, err
	}

	step, err := c.SubmitPassword(ctx, flow.ID, username, password)
	if err != nil {
		return nil, err
	}
	if !step.Advanced {
		return nil, fmt.Errorf("password step did not advance")
	}

	flow, err = c.GetFlow(ctx, flow.ID)
	if err != nil {
		return nil, err
	}

	step, err = c.SubmitCode(ctx, flow.ID, flow.DemoCode)
	if err != nil {
		return nil, err
	}
	if !step.Advanced || step.Token == "" {
		return nil, fmt.Errorf("code step did not authenticate")
	}

	return c.NewSession(step.Token), nil
}

// NewSession wraps an existing session token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
