package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/session"
)

func TestLoginWithGoogle_CompletesOnCallbackToken(t *testing.T) {
	ctx := context.Background()
	creds := setupCreds(t, "oauth_flow_ok")
	sess := session.New(creds)
	token := authToken(t)

	apiClient := &fakeAPI{meResp: &models.AuthResponse{
		UserID:       "u-1",
		Email:        "a@b.com",
		FullName:     "A B",
		AuthProvider: models.AuthProviderGoogle,
	}}
	rt := &fakeRealtime{}
	svc := NewAuthService(apiClient, sess, creds, rt, nopLogger{})

	cfg := OAuthConfig{CallbackAddr: "127.0.0.1:0", ErrorDelay: 10 * time.Millisecond}

	callbackCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- svc.LoginWithGoogle(ctx, cfg, func(authURL, callbackURL string) {
			require.NotEmpty(t, authURL)
			callbackCh <- callbackURL
		})
	}()

	var callbackURL string
	select {
	case callbackURL = <-callbackCh:
	case <-time.After(5 * time.Second):
		t.Fatal("notify was not called")
	}

	resp, err := http.Get(callbackURL + "?token=" + token)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("flow did not finish")
	}

	require.True(t, sess.Snapshot().IsAuthenticated)
	stored, err := creds.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, token, stored)
}

func TestLoginWithGoogle_MissingTokenFailsFlow(t *testing.T) {
	ctx := context.Background()
	creds := setupCreds(t, "oauth_flow_missing")
	sess := session.New(creds)
	svc := NewAuthService(&fakeAPI{}, sess, creds, &fakeRealtime{}, nopLogger{})

	cfg := OAuthConfig{CallbackAddr: "127.0.0.1:0", ErrorDelay: 10 * time.Millisecond}

	callbackCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- svc.LoginWithGoogle(ctx, cfg, func(authURL, callbackURL string) {
			callbackCh <- callbackURL
		})
	}()

	callbackURL := <-callbackCh
	resp, err := http.Get(callbackURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrMissingCallbackToken)
	case <-time.After(5 * time.Second):
		t.Fatal("flow did not finish")
	}
	require.Equal(t, ErrMissingCallbackToken.Error(), sess.Snapshot().Err)
}

func TestLoginWithGoogle_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	creds := setupCreds(t, "oauth_flow_cancel")
	sess := session.New(creds)
	svc := NewAuthService(&fakeAPI{}, sess, creds, &fakeRealtime{}, nopLogger{})

	done := make(chan error, 1)
	go func() {
		done <- svc.LoginWithGoogle(ctx, OAuthConfig{CallbackAddr: "127.0.0.1:0"}, func(authURL, callbackURL string) {})
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("flow did not finish")
	}
}
