package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/client/session"
)

func authenticated() session.State {
	return session.State{
		User:            &models.User{ID: "u-1", Email: "a@b.com"},
		IsAuthenticated: true,
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("allows authenticated", func(t *testing.T) {
		d := RequireAuth(authenticated(), "/profile")
		require.True(t, d.Allowed)
		require.Empty(t, d.RedirectTo)
	})

	t.Run("denies guest and carries return url", func(t *testing.T) {
		d := RequireAuth(session.State{}, "/profile")
		require.False(t, d.Allowed)
		require.Equal(t, LoginRoute, d.RedirectTo)
		require.Equal(t, "/profile", d.ReturnURL)
	})
}

func TestRequireGuest(t *testing.T) {
	t.Run("allows guest", func(t *testing.T) {
		d := RequireGuest(session.State{})
		require.True(t, d.Allowed)
	})

	t.Run("denies authenticated", func(t *testing.T) {
		d := RequireGuest(authenticated())
		require.False(t, d.Allowed)
		require.Equal(t, LandingRoute, d.RedirectTo)
	})
}
