package storage

import (
	"context"
	"errors"
)

var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a string key-value store. Get reports ok=false for absent keys;
// Remove of an absent key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}

// BatchRemover is implemented by backends that can remove several keys as
// one all-or-nothing operation.
type BatchRemover interface {
	RemoveAll(ctx context.Context, keys ...string) error
}
