package securestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Basics(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "auth_token", "t"))
	v, ok, err := m.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", v)

	require.NoError(t, m.Delete(ctx, "auth_token"))
	require.NoError(t, m.Delete(ctx, "auth_token"))
	assert.Empty(t, m.Keys())
}

func TestMemoryStore_Batch(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())

	require.ErrorIs(t, m.SetMany(ctx, map[string]string{"c": "3", "": "x"}), ErrEmptyKey)
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())

	require.NoError(t, m.DeleteMany(ctx, "a", "b"))
	assert.Empty(t, m.Keys())
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, m.Set(ctx, "a", "1"), context.Canceled)
	_, _, err := m.Get(ctx, "a")
	require.ErrorIs(t, err, context.Canceled)
}
