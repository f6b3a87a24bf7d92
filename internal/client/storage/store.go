package storage

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/dropwatch/internal/logging"
)

// Store stores JSON-encoded values in a Backend. Failures are logged and
// swallowed: a failed write leaves the previous value, a failed or malformed
// read looks like an absent key.
type Store struct {
	backend Backend
	log     logging.Logger
}

func NewStore(backend Backend, log logging.Logger) *Store {
	return &Store{backend: backend, log: log}
}

func (s *Store) SetJSON(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "storage encode failed", "key", key, "error", err)
		return
	}
	if err := s.backend.Set(ctx, key, string(b)); err != nil {
		s.log.Error(ctx, "storage write failed", "key", key, "error", err)
	}
}

// GetJSON decodes the value under key into dst and reports whether it did.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "storage read failed", "key", key, "error", err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Error(ctx, "storage decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.Remove(ctx, key); err != nil {
		s.log.Error(ctx, "storage remove failed", "key", key, "error", err)
	}
}

func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		s.log.Error(ctx, "storage clear failed", "error", err)
	}
}
