package securestore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func newStore(t *testing.T, db *sql.DB, secret string) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(context.Background(), db, []byte(secret))
	require.NoError(t, err)
	return s
}

func TestSQLiteStore_SetGet(t *testing.T) {
	s := newStore(t, setupDB(t), "device")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "mock-token"))

	v, ok, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mock-token", v)
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	s := newStore(t, setupDB(t), "device")

	v, ok, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteStore_ValuesAreNotPlaintext(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db, "device")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user_data", `{"email":"demo@gaming.com"}`))

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM secure_items WHERE key = 'user_data'`).Scan(&raw))
	assert.NotContains(t, string(raw), "demo@gaming.com")
}

func TestSQLiteStore_UpsertAndDelete(t *testing.T) {
	s := newStore(t, setupDB(t), "device")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	v, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "k"))
}

func TestSQLiteStore_SaltSurvivesReopen(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := newStore(t, db, "device")
	require.NoError(t, first.Set(ctx, "auth_token", "t1"))

	second := newStore(t, db, "device")
	v, ok, err := second.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}

func TestSQLiteStore_WrongSecretIsUndecryptable(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, newStore(t, db, "device-a").Set(ctx, "auth_token", "t1"))

	_, ok, err := newStore(t, db, "device-b").Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrUndecryptable)
	assert.False(t, ok)
}

func TestSQLiteStore_MovedValueIsUndecryptable(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db, "device")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "t1"))
	_, err := db.Exec(`UPDATE secure_items SET key = 'user_data' WHERE key = 'auth_token'`)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, "user_data")
	require.ErrorIs(t, err, ErrUndecryptable)
}

func TestSQLiteStore_BatchSetAndDelete(t *testing.T) {
	s := newStore(t, setupDB(t), "device")
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{"auth_token": "t", "user_data": "{}"}))
	for _, k := range []string{"auth_token", "user_data"} {
		_, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, k)
	}

	require.NoError(t, s.DeleteMany(ctx, "auth_token", "user_data"))
	for _, k := range []string{"auth_token", "user_data"} {
		_, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}
}

func TestSQLiteStore_BatchIsAtomic(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db, "device")
	ctx := context.Background()

	// auth_token is written first, then the trigger aborts the user_data insert
	_, err := db.Exec(`CREATE TRIGGER block_profile BEFORE INSERT ON secure_items
		WHEN NEW.key = 'user_data' BEGIN SELECT RAISE(ABORT, 'blocked'); END`)
	require.NoError(t, err)

	err = s.SetMany(ctx, map[string]string{"auth_token": "t", "user_data": "{}"})
	require.ErrorContains(t, err, "failed to set item[user_data]")

	_, ok, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_EmptySecret(t *testing.T) {
	_, err := NewSQLiteStore(context.Background(), setupDB(t), nil)
	require.Error(t, err)
}

func TestSQLiteStore_DriverErrorsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &SQLiteStore{db: db, key: make([]byte, 32)}
	ctx := context.Background()
	boom := errors.New("boom")

	mock.ExpectQuery("SELECT value, nonce FROM secure_items").WithArgs("k").WillReturnError(boom)
	_, _, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "failed to get item[k]")

	mock.ExpectExec("INSERT INTO secure_items").WillReturnError(boom)
	err = s.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set item[k]")

	mock.ExpectExec("DELETE FROM secure_items").WithArgs("k").WillReturnError(boom)
	err = s.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete item[k]")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM secure_items").WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM secure_items").WithArgs("b").WillReturnError(boom)
	mock.ExpectRollback()
	err = s.DeleteMany(ctx, "a", "b")
	require.ErrorContains(t, err, "failed to delete item[b]")

	require.NoError(t, mock.ExpectationsWereMet())
}
