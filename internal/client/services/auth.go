// Package services contains the application services driving the FundScope
// CLI: authentication, the risk-profile wizard, manual portfolio selection
// and the chat assistant. Services orchestrate the API client, session
// state, credential store and realtime channel; they own no UI.
package services

import (
	"context"
	"errors"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/credstore"
	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/session"
	"github.com/fundscope/fundscope-cli/internal/logging"
)

// ErrMissingCallbackToken is returned when the OAuth redirect arrives
// without the token query parameter.
var ErrMissingCallbackToken = errors.New("no authentication token received")

// RealtimeController is the slice of the realtime manager the auth flow
// needs: rebuild after credential changes, teardown before sign-out.
type RealtimeController interface {
	ReconnectWithLatestToken(ctx context.Context)
	Deactivate()
}

// AuthService drives the login/register/OAuth flows. It mutates session
// state and requests realtime reconnects but holds no state of its own.
type AuthService struct {
	api      api.Client
	session  *session.Store
	creds    *credstore.Store
	realtime RealtimeController
	log      logging.Logger
}

func NewAuthService(apiClient api.Client, sess *session.Store, creds *credstore.Store, rt RealtimeController, log logging.Logger) *AuthService {
	return &AuthService{
		api:      apiClient,
		session:  sess,
		creds:    creds,
		realtime: rt,
		log:      log,
	}
}

// Login authenticates with email/password. On success the session is
// updated and persisted before the realtime reconnect is requested, so the
// new connection always carries the fresh token. On failure the message is
// recorded in session state and the error is returned to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	s.session.SetLoading(true)

	resp, err := s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.session.LoginFailure(api.ErrorMessage(err, "Login failed"))
		return err
	}

	if err := s.session.LoginSuccess(ctx, models.UserFromAuthResponse(resp), resp.AccessToken); err != nil {
		s.session.LoginFailure(api.ErrorMessage(err, "Login failed"))
		return err
	}
	s.realtime.ReconnectWithLatestToken(ctx)
	return nil
}

// Register creates an account and signs the user in, following the same
// success/failure paths as Login.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	s.session.SetLoading(true)

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.session.LoginFailure(api.ErrorMessage(err, "Registration failed"))
		return err
	}

	if err := s.session.LoginSuccess(ctx, models.UserFromAuthResponse(resp), resp.AccessToken); err != nil {
		s.session.LoginFailure(api.ErrorMessage(err, "Registration failed"))
		return err
	}
	s.realtime.ReconnectWithLatestToken(ctx)
	return nil
}

// HandleOAuthCallback completes an external provider flow. The token is
// saved before the profile fetch so /me is authenticated; if the fetch
// fails the token is rolled back, never leaving a half-authenticated state.
func (s *AuthService) HandleOAuthCallback(ctx context.Context, token string) error {
	if token == "" {
		s.session.LoginFailure(ErrMissingCallbackToken.Error())
		return ErrMissingCallbackToken
	}

	if err := s.creds.SaveToken(ctx, token); err != nil {
		return err
	}

	resp, err := s.api.Me(ctx)
	if err != nil {
		if rbErr := s.creds.SignOut(ctx); rbErr != nil {
			s.log.Error(ctx, "oauth rollback failed", "err", rbErr)
		}
		s.session.LoginFailure(api.ErrorMessage(err, "Failed to complete sign in. Please try again."))
		return err
	}

	if err := s.session.LoginSuccess(ctx, models.UserFromAuthResponse(resp), token); err != nil {
		return err
	}
	s.realtime.ReconnectWithLatestToken(ctx)
	return nil
}

// Logout deactivates the realtime channel first, then clears the session.
// The ordering matters: no connection may keep running with a token that is
// about to be revoked locally.
func (s *AuthService) Logout(ctx context.Context) error {
	s.realtime.Deactivate()
	return s.session.Logout(ctx)
}
