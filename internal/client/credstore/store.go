// Package credstore persists the bearer token and the cached user profile in
// the client's durable key-value storage, and performs advisory token-expiry
// checks. It is the only component allowed to read or write the reserved
// auth keys; everything else goes through it.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fundscope/fundscope-cli/internal/client/models"
	"github.com/fundscope/fundscope-cli/internal/dbx"
)

const (
	tokenKey = "auth-token"
	userKey  = "auth-user"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// Store is the durable credential store. The underlying metadata table is
// shared client storage; Store owns exactly the tokenKey and userKey rows.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// SaveToken overwrites the durable token slot. Idempotent.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, []byte(token))
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SaveUser overwrites the durable user projection.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.set(ctx, userKey, data)
}

// User returns the stored user, or nil when absent. Malformed stored JSON is
// treated as absence; it never produces an error.
func (s *Store) User(ctx context.Context) *models.User {
	value, err := s.get(ctx, userKey)
	if err != nil || len(value) == 0 {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil
	}
	return &user
}

// HasValidToken reports whether a token is stored, parses as a JWT and has
// an unexpired numeric exp claim. This is a client-side convenience only:
// the check never verifies the signature and must not be treated as a
// security boundary.
func (s *Store) HasValidToken(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	return tokenValid(token, timeNow())
}

// HasValidSession reports whether both a currently-valid token and a cached
// user are present.
func (s *Store) HasValidSession(ctx context.Context) bool {
	return s.HasValidToken(ctx) && s.User(ctx) != nil
}

// SignOut removes exactly the two reserved keys. Unrelated rows in the
// shared metadata table are preserved.
func (s *Store) SignOut(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{tokenKey, userKey} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
			}
		}
		return nil
	})
}

// tokenValid decodes the token without verifying the signature and checks
// the exp claim against now.
func tokenValid(token string, now time.Time) bool {
	if strings.Count(token, ".") != 2 {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(now)
}
