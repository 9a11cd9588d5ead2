package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/guard"
	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/services"
	"github.com/fundscope/fundscope-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) getStatus() string {
	s := a.rt.State().String()
	if state := a.session.Snapshot(); state.IsAuthenticated {
		s = state.User.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// requireAuth runs the guarded-route check for a command. When the session
// is not authenticated it reports where the user was redirected and which
// route would be resumed after sign-in.
func (a *App) requireAuth(route string) bool {
	decision := guard.RequireAuth(a.session.Snapshot(), route)
	if decision.Allowed {
		return true
	}
	fmt.Printf("Please sign in first (redirected to %s, will return to %s)\n", decision.RedirectTo, decision.ReturnURL)
	return false
}

// requireGuest blocks sign-in commands for an already authenticated session.
func (a *App) requireGuest() bool {
	decision := guard.RequireGuest(a.session.Snapshot())
	if decision.Allowed {
		return true
	}
	fmt.Printf("Already signed in (redirected to %s). Use logout first.\n", decision.RedirectTo)
	return false
}

// Register prompts for account details and creates an account. On success the
// user is signed in and the realtime channel is rebuilt with the new token.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if !a.requireGuest() {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{
		Email:    email,
		Password: string(password),
		FullName: fullName,
		Phone:    phone,
	}
	if err := a.authService.Register(ctx, req); err != nil {
		fmt.Println(a.session.Snapshot().Err)
		return err
	}

	fmt.Println("Welcome to FundScope!")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	if !a.requireGuest() {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		fmt.Println(a.session.Snapshot().Err)
		return err
	}

	fmt.Println("Signed in.")
	return nil
}

// Google runs the external provider flow. The authorization URL is printed
// for the user to open in a browser; the flow completes when the provider
// redirects to the local callback.
func (a *App) Google(ctx context.Context) error {
	if !a.requireGuest() {
		return nil
	}

	cfg := services.OAuthConfig{
		CallbackAddr: a.config.OAuthCallbackAddr,
		ErrorDelay:   services.DefaultOAuthErrorDelay,
	}
	err := a.authService.LoginWithGoogle(ctx, cfg, func(authURL, callbackURL string) {
		fmt.Println("Open this URL in your browser to sign in with Google:")
		fmt.Println("  " + authURL)
		fmt.Println("Waiting for the redirect on " + callbackURL + " ...")
	})
	if err != nil {
		fmt.Println(a.session.Snapshot().Err)
		return err
	}

	fmt.Println("Signed in.")
	return nil
}

// Logout tears the realtime channel down and clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Println("Sign out failed:", err)
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireAuth("/landing") {
		return nil
	}
	user := a.session.Snapshot().User
	fmt.Printf("%s <%s>", user.Name, user.Email)
	if user.Type != "" {
		fmt.Printf(" [%s]", user.Type)
	}
	if user.AuthProvider != "" {
		fmt.Printf(" via %s", user.AuthProvider)
	}
	fmt.Println()
	return nil
}

// Status prints session and realtime channel state.
func (a *App) Status(ctx context.Context) error {
	state := a.session.Snapshot()
	fmt.Println("Authenticated:", state.IsAuthenticated)
	if state.Err != "" {
		fmt.Println("Last error:", state.Err)
	}
	fmt.Println("Realtime channel:", a.rt.State())
	return nil
}
