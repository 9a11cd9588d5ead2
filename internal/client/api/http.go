package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/obs"
)

// HTTPClient is the production Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL ("http://host:port").
// Every request reads the current token from tokens, so credential changes
// take effect immediately without rebuilding the client.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{tokens: tokens, next: http.DefaultTransport},
		},
	}
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.postJSON(ctx, "login", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.postJSON(ctx, "register", "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.getJSON(ctx, "me", "/api/v1/auth/me", &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitRiskProfile(ctx context.Context, req models.RiskProfileRequest) (*models.RiskProfileResponse, error) {
	body, err := c.do(ctx, "risk_profile", http.MethodPost, "/api/onboarding/risk-profile", req)
	if err != nil {
		return nil, err
	}
	return models.DecodeRiskProfileResponse(body)
}

func (c *HTTPClient) SubmitManualSelection(ctx context.Context, req models.ManualSelectionRequest) (*models.ManualSelectionResponse, error) {
	var resp models.ManualSelectionResponse
	err := c.postJSON(ctx, "manual_selection", "/api/portfolio/manual-selection", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SendChatMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var resp models.ChatResponse
	err := c.postJSON(ctx, "chat_message", "/api/chat/message", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GoogleAuthURL() string {
	return c.baseURL + "/oauth2/authorization/google"
}

func (c *HTTPClient) postJSON(ctx context.Context, operation, path string, req any, out any) error {
	body, err := c.do(ctx, operation, http.MethodPost, path, req)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, operation, path string, out any) error {
	body, err := c.do(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// do performs one request and returns the response body, with transport and
// status errors mapped to the package's error taxonomy.
func (c *HTTPClient) do(ctx context.Context, operation, method, path string, payload any) (body []byte, err error) {
	defer func() { obs.ObserveAPIRequest(operation, err) }()

	var reqBody io.Reader
	if payload != nil {
		data, merr := json.Marshal(payload)
		if merr != nil {
			return nil, fmt.Errorf("marshal request: %w", merr)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := c.mapStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

// mapStatus turns non-2xx responses into the package's sentinels, keeping
// the server-provided message where one exists.
func (c *HTTPClient) mapStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	default:
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &payload)
		if payload.Message == "" {
			payload.Message = http.StatusText(status)
		}
		return &APIError{Status: status, Message: payload.Message}
	}
}
