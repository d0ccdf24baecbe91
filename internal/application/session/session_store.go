// Package session owns the persisted identity of the signed-in user.
// Token issuance and verification belong to the external API; this store
// only keeps the identity the API handed back, for session continuity and
// admin-only UI gating.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/storefront/core/internal/infrastructure/localstore"
)

// User is the signed-in identity as persisted under the userInfo key
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token,omitempty"`
}

// SessionStore loads the persisted user on construction and persists
// changes on sign-in and sign-out.
type SessionStore struct {
	mu     sync.RWMutex
	store  localstore.Store
	logger *zap.Logger
	user   *User
}

// NewSessionStore creates the session store, restoring any persisted
// identity. A corrupt record or one whose token has already expired is
// dropped: the shopper simply signs in again.
func NewSessionStore(ctx context.Context, store localstore.Store, logger *zap.Logger) *SessionStore {
	s := &SessionStore{
		store:  store,
		logger: logger,
	}
	s.user = s.load(ctx)
	return s
}

func (s *SessionStore) load(ctx context.Context) *User {
	data, err := s.store.Get(ctx, localstore.UserInfoKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrKeyNotFound) {
			s.logger.Warn("failed to read user info, starting signed out", zap.Error(err))
		}
		return nil
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("corrupt user info, starting signed out", zap.Error(err))
		return nil
	}

	if tokenExpired(user.Token) {
		s.logger.Info("stored session token expired, starting signed out",
			zap.String("email", user.Email))
		if err := s.store.Delete(ctx, localstore.UserInfoKey); err != nil {
			s.logger.Warn("failed to remove expired user info", zap.Error(err))
		}
		return nil
	}

	return &user
}

// tokenExpired reports whether the token carries an exp claim in the past.
// The claim is read without signature verification: the server remains the
// authority and will reject a forged token anyway; this check only avoids
// presenting a session the server is guaranteed to bounce. Tokens that are
// not parseable JWTs are kept and left for the server to judge.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Set persists the signed-in user
func (s *SessionStore) Set(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user info: %w", err)
	}
	if err := s.store.Set(ctx, localstore.UserInfoKey, data); err != nil {
		s.logger.Error("failed to persist user info", zap.Error(err))
		return fmt.Errorf("failed to persist user info: %w", err)
	}
	s.user = &user
	return nil
}

// Clear signs the user out and removes the persisted identity
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, localstore.UserInfoKey); err != nil {
		s.logger.Error("failed to remove user info", zap.Error(err))
		return fmt.Errorf("failed to remove user info: %w", err)
	}
	s.user = nil
	return nil
}

// Current returns the signed-in user, if any
func (s *SessionStore) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token of the signed-in user, or ""
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// IsAdmin reports whether the signed-in user has admin rights
func (s *SessionStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && s.user.IsAdmin
}
