// Package session keeps the authenticated dashboard session: bearer token,
// user record and role, stored as independent entries of a storage.Backend.
//
// Nothing ties the three entries together. A stored role may disagree with
// the token and no check is made; each getter reads its own key. Storage
// failures are logged and never returned, so callers see a write failure as
// a session that did not change.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dropwatch/internal/client/storage"
	"github.com/dmitrijs2005/dropwatch/internal/common"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrOpaqueToken      = errors.New("token is not a JWT")
)

// Keys names the storage entries used by a Session.
type Keys struct {
	Token string
	User  string
	Role  string
}

func DefaultKeys() Keys {
	return Keys{Token: common.TokenKey, User: common.UserKey, Role: common.RoleKey}
}

type Option func(*Session)

func WithKeys(k Keys) Option {
	return func(s *Session) { s.keys = k }
}

type Session struct {
	backend storage.Backend
	store   *storage.Store
	keys    Keys
	log     logging.Logger
}

func New(backend storage.Backend, log logging.Logger, opts ...Option) *Session {
	s := &Session{
		backend: backend,
		store:   storage.NewStore(backend, log),
		keys:    DefaultKeys(),
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) SetToken(ctx context.Context, token string) {
	if err := s.backend.Set(ctx, s.keys.Token, token); err != nil {
		s.log.Error(ctx, "failed to save token", "error", err)
		return
	}
	s.log.Debug(ctx, "token saved")
}

// Token returns the stored bearer token or "" when there is none.
func (s *Session) Token(ctx context.Context) string {
	return s.get(ctx, s.keys.Token)
}

// SetUser stores the user record as JSON.
func (s *Session) SetUser(ctx context.Context, user any) {
	s.store.SetJSON(ctx, s.keys.User, user)
}

// User decodes the stored user record into dst. It reports false when no
// record is stored or the stored one cannot be decoded.
func (s *Session) User(ctx context.Context, dst any) bool {
	return s.store.GetJSON(ctx, s.keys.User, dst)
}

func (s *Session) SetRole(ctx context.Context, role Role) {
	if err := s.backend.Set(ctx, s.keys.Role, string(role)); err != nil {
		s.log.Error(ctx, "failed to save role", "role", role, "error", err)
	}
}

func (s *Session) Role(ctx context.Context) Role {
	return Role(s.get(ctx, s.keys.Role))
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Logout removes the token, user and role entries and returns the page to
// send the user to.
func (s *Session) Logout(ctx context.Context) string {
	keys := []string{s.keys.Token, s.keys.User, s.keys.Role}
	if br, ok := s.backend.(storage.BatchRemover); ok {
		if err := br.RemoveAll(ctx, keys...); err != nil {
			s.log.Error(ctx, "failed to clear session", "error", err)
		}
	} else {
		for _, key := range keys {
			if err := s.backend.Remove(ctx, key); err != nil {
				s.log.Error(ctx, "failed to remove session entry", "key", key, "error", err)
			}
		}
	}
	s.log.Info(ctx, "user logged out")
	return LoginPage
}

// Destination is the dashboard for the stored role.
func (s *Session) Destination(ctx context.Context) string {
	return DashboardFor(s.Role(ctx))
}

// RequireAuth returns ErrNotAuthenticated and the login page when no token
// is stored.
func (s *Session) RequireAuth(ctx context.Context) (string, error) {
	if !s.IsAuthenticated(ctx) {
		s.log.Warn(ctx, "user not authenticated, redirecting to login")
		return LoginPage, ErrNotAuthenticated
	}
	return "", nil
}

// Claims decodes the stored token as a JWT without verifying its signature.
// The client has no key to verify with; the claims are informational only.
func (s *Session) Claims(ctx context.Context) (*jwt.RegisteredClaims, error) {
	token := s.Token(ctx)
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}
	return claims, nil
}

// Expired reports whether the stored token is a JWT whose exp is before now.
// Opaque tokens never expire from the client's point of view.
func (s *Session) Expired(ctx context.Context, now time.Time) bool {
	claims, err := s.Claims(ctx)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}

func (s *Session) get(ctx context.Context, key string) string {
	v, _, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to read session entry", "key", key, "error", err)
		return ""
	}
	return v
}
