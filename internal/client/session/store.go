// Package session holds the live, process-wide record of who the user is.
// The Store is constructed explicitly at startup, injected into consumers,
// and mutated only through the transitions defined here.
package session

import (
	"context"
	"sync"

	"github.com/fundscope/fundscope-cli/internal/client/credstore"
	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// State is the session snapshot handed to readers and subscribers.
// Invariant: IsAuthenticated implies User != nil.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Store is the single session-state container. All mutations are
// read-modify-write merges over the current snapshot, applied under the
// lock so no reader can observe a partially-applied patch.
type Store struct {
	creds *credstore.Store

	mu    sync.RWMutex
	state State
	subs  map[int]chan State
	next  int
}

func New(creds *credstore.Store) *Store {
	return &Store{
		creds: creds,
		subs:  make(map[int]chan State),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a subscriber and returns a channel receiving every
// state change. The channel is closed when ctx ends. Slow subscribers are
// skipped rather than blocked on.
func (s *Store) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// patch applies fn to the current state under the lock and fans the new
// snapshot out to subscribers.
func (s *Store) patch(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop when subscriber is slow to avoid blocking mutations.
		}
	}
	s.mu.Unlock()
}

// LoginSuccess persists the credential, then atomically marks the session
// authenticated. Persistence happens first so a crash between the two steps
// leaves a restorable (not half-authenticated) state.
func (s *Store) LoginSuccess(ctx context.Context, user *models.User, token string) error {
	if err := s.creds.SaveToken(ctx, token); err != nil {
		return err
	}
	if err := s.creds.SaveUser(ctx, user); err != nil {
		return err
	}
	s.patch(func(st *State) {
		st.User = user
		st.IsAuthenticated = true
		st.IsLoading = false
		st.Err = ""
	})
	return nil
}

// LoginFailure records the failure message. User and IsAuthenticated are
// left untouched so a failed retry does not destroy an existing session.
func (s *Store) LoginFailure(msg string) {
	s.patch(func(st *State) {
		st.IsLoading = false
		st.Err = msg
	})
}

// Logout clears the durable credential, then the in-memory identity.
// Loading and error flags are left for the caller to manage.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.creds.SignOut(ctx); err != nil {
		return err
	}
	s.patch(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
	})
	return nil
}

// SetLoading flips only the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.patch(func(st *State) {
		st.IsLoading = loading
	})
}

// InitializeFromStorage restores an authenticated session from durable
// storage when a cached user and a currently-valid token are both present.
// This is the only path by which a restart regains a session without a
// network round trip; it must run before the first guard decision.
func (s *Store) InitializeFromStorage(ctx context.Context) {
	user := s.creds.User(ctx)
	if user == nil || !s.creds.HasValidToken(ctx) {
		return
	}
	s.patch(func(st *State) {
		st.User = user
		st.IsAuthenticated = true
	})
}
