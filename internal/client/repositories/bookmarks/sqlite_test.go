package bookmarks

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gamenews/internal/client/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAdd_ListKeepsInsertionOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "3"))
	require.NoError(t, r.Add(ctx, "1"))
	require.NoError(t, r.Add(ctx, "2"))

	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestAdd_ExistingKeepsPosition(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "a"))
	require.NoError(t, r.Add(ctx, "b"))
	require.NoError(t, r.Add(ctx, "a"))

	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestAdd_AfterRemoveGoesLast(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "a"))
	require.NoError(t, r.Add(ctx, "b"))
	require.NoError(t, r.Remove(ctx, "a"))
	require.NoError(t, r.Add(ctx, "a"))

	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Remove(ctx, "missing"))

	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestContains(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "x"))

	ok, err := r.Contains(ctx, "x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Contains(ctx, "y")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear_RemovesAll(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "a"))
	require.NoError(t, r.Add(ctx, "b"))
	require.NoError(t, r.Clear(ctx))

	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	require.ErrorContains(t, r.Add(ctx, "k"), "failed to add bookmark[k]")
	require.ErrorContains(t, r.Remove(ctx, "k"), "failed to remove bookmark[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear bookmarks")

	_, err := r.Contains(ctx, "k")
	require.ErrorContains(t, err, "failed to check bookmark[k]")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list bookmarks")
}
