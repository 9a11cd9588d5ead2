// Package api implements the HTTP client for the FundScope backend. It owns
// request/response plumbing and error mapping; it never touches session
// state, that is the service layer's job.
package api

import (
	"context"

	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// Client is the backend API surface used by the service layer.
type Client interface {
	// Login exchanges credentials for a token. POST /api/v1/auth/login.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	// Register creates an account. POST /api/v1/auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	// Me fetches the profile for the currently stored token.
	// GET /api/v1/auth/me.
	Me(ctx context.Context) (*models.AuthResponse, error)

	// SubmitRiskProfile posts the questionnaire and decodes the result,
	// unwrapping the backend's response envelopes.
	SubmitRiskProfile(ctx context.Context, req models.RiskProfileRequest) (*models.RiskProfileResponse, error)

	// SubmitManualSelection posts a hand-picked portfolio for diagnosis.
	SubmitManualSelection(ctx context.Context, req models.ManualSelectionRequest) (*models.ManualSelectionResponse, error)

	// SendChatMessage posts one chat turn to the advisory assistant.
	SendChatMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)

	// GoogleAuthURL returns the external authorization endpoint users are
	// redirected to for the Google flow.
	GoogleAuthURL() string
}
