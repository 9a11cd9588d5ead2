// Package guard contains the navigation-admission predicates. Guards are
// pure functions over a session snapshot: they decide, they never mutate.
// They trust only the in-memory session state, so the composing application
// must run session.InitializeFromStorage before the first decision.
package guard

import "github.com/fundscope/fundscope-cli/internal/client/session"

const (
	// LoginRoute is where unauthenticated users are sent.
	LoginRoute = "/auth/login"
	// LandingRoute is the authenticated landing view.
	LandingRoute = "/landing"
)

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo names the route to go to instead; ReturnURL, when set, carries
// the originally requested path so navigation can resume after login.
// Resuming itself is the caller's job, the guard only carries the value.
type Decision struct {
	Allowed    bool
	RedirectTo string
	ReturnURL  string
}

// RequireAuth admits only authenticated sessions. Denials redirect to the
// login route with the requested path attached.
func RequireAuth(s session.State, requested string) Decision {
	if s.IsAuthenticated {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: LoginRoute, ReturnURL: requested}
}

// RequireGuest admits only unauthenticated sessions; authenticated users
// are sent to the landing route.
func RequireGuest(s session.State) Decision {
	if !s.IsAuthenticated {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: LandingRoute}
}
