package services

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// DefaultOAuthErrorDelay keeps the error page served long enough for the
// browser to render it before the flow gives up.
const DefaultOAuthErrorDelay = 3 * time.Second

// OAuthConfig tunes the loopback listener that catches the provider
// redirect during LoginWithGoogle.
type OAuthConfig struct {
	// CallbackAddr is the loopback listen address, e.g. "127.0.0.1:4300".
	// The provider must be configured to redirect to
	// http://<CallbackAddr>/auth/callback?token=...
	CallbackAddr string
	// ErrorDelay is how long the error page stays served before the flow
	// gives up after a redirect without a token.
	ErrorDelay time.Duration
}

// LoginWithGoogle runs the external provider flow: it serves a one-shot
// loopback callback endpoint, hands the authorization and callback URLs to
// notify (the CLI prints them), and waits for the redirect. The redirect
// must carry a token query parameter; its absence is terminal after the
// configured delay. A received token goes through HandleOAuthCallback.
func (s *AuthService) LoginWithGoogle(ctx context.Context, cfg OAuthConfig, notify func(authURL, callbackURL string)) error {
	ln, err := net.Listen("tcp", cfg.CallbackAddr)
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}

	tokenCh := make(chan string, 1)
	missingCh := make(chan struct{}, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/callback", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "No authentication token received.", http.StatusBadRequest)
			select {
			case missingCh <- struct{}{}:
			default:
			}
			return
		}
		fmt.Fprintln(w, "Sign in complete. You can return to the terminal.")
		select {
		case tokenCh <- token:
		default:
		}
	})

	srv := &http.Server{Handler: mux}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	notify(s.api.GoogleAuthURL(), "http://"+ln.Addr().String()+"/auth/callback")

	select {
	case token := <-tokenCh:
		return s.HandleOAuthCallback(ctx, token)
	case <-missingCh:
		// Keep the error page reachable briefly, then fall back to login.
		select {
		case <-time.After(cfg.ErrorDelay):
		case <-ctx.Done():
		}
		s.session.LoginFailure(ErrMissingCallbackToken.Error())
		return ErrMissingCallbackToken
	case <-ctx.Done():
		return ctx.Err()
	}
}
