package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_Basic(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "b", "2"))
	require.NoError(t, m.Set(ctx, "a", "1"))

	v, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	keys, _ := m.Keys(ctx)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, m.Remove(ctx, "a"))
	require.NoError(t, m.Remove(ctx, "missing"))
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, m.Clear(ctx))
	keys, _ = m.Keys(ctx)
	assert.Empty(t, keys)
}

func TestMemoryBackend_Quota(t *testing.T) {
	m := NewMemoryBackendWithQuota(10)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "12345"))
	require.ErrorIs(t, m.Set(ctx, "j", "12345"), ErrQuotaExceeded)

	v, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "12345", v)

	// overwriting counts only the delta
	require.NoError(t, m.Set(ctx, "k", "123456789"))
	require.ErrorIs(t, m.Set(ctx, "k", "1234567890"), ErrQuotaExceeded)

	v, _, _ = m.Get(ctx, "k")
	assert.Equal(t, "123456789", v, "failed write keeps previous value")

	require.NoError(t, m.Remove(ctx, "k"))
	require.NoError(t, m.Set(ctx, "j", "12345"))
}

func TestMemoryBackend_RemoveAllFreesQuota(t *testing.T) {
	m := NewMemoryBackendWithQuota(10)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1234"))
	require.NoError(t, m.Set(ctx, "b", "1234"))
	require.NoError(t, m.RemoveAll(ctx, "a", "b", "missing"))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	require.NoError(t, m.Set(ctx, "c", "12345678"))
}
