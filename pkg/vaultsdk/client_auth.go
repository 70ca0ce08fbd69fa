package vaultsdk

import (
	"context"
	"net/http"
	"net/url"
)

// BeginFlow opens a new sign-in flow.
func (c *SDKClient) BeginFlow(ctx context.Context) (*AuthFlowResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/flows", "", nil)
	if err != nil {
		return nil, err
	}

	var flow AuthFlowResponse
	if err := decodeJSON(resp, &flow, http.StatusCreated); err != nil {
		return nil, err
	}
	return &flow, nil
}

// GetFlow returns the flow with the demo authenticator's current code.
func (c *SDKClient) GetFlow(ctx context.Context, flowID string) (*AuthFlowResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/auth/flows/"+url.PathEscape(flowID), "", nil)
	if err != nil {
		return nil, err
	}

	var flow AuthFlowResponse
	if err := decodeJSON(resp, &flow, http.StatusOK); err != nil {
		return nil, err
	}
	return &flow, nil
}

// SubmitPassword sends the password step. It takes as long as the
// server's simulated latency.
func (c *SDKClient) SubmitPassword(ctx context.Context, flowID, username, password string) (*StepResponse, error) {
	req := PasswordStepRequest{Username: username, Password: password}
	return c.submitStep(ctx, flowID, "password", req)
}

// SubmitCode sends the code step as a single string.
func (c *SDKClient) SubmitCode(ctx context.Context, flowID, code string) (*StepResponse, error) {
	return c.submitStep(ctx, flowID, "code", CodeStepRequest{Code: code})
}

// SubmitCodeDigits sends the code step as six single-character inputs.
func (c *SDKClient) SubmitCodeDigits(ctx context.Context, flowID string, digits []string) (*StepResponse, error) {
	return c.submitStep(ctx, flowID, "code", CodeStepRequest{Digits: digits})
}

func (c *SDKClient) submitStep(ctx context.Context, flowID, step string, body any) (*StepResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/flows/"+url.PathEscape(flowID)+"/"+step, "", body)
	if err != nil {
		return nil, err
	}

	var out StepResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
