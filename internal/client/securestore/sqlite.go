package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/gamenews/internal/common"
	"github.com/dmitrijs2005/gamenews/internal/cryptox"
	"github.com/dmitrijs2005/gamenews/internal/dbx"
)

const saltMetaKey = "kdf_salt"

// SQLiteStore is a Store backed by the secure_items table. Values are
// sealed with AES-GCM; the item key is bound as additional data.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Batch = (*SQLiteStore)(nil)
)

// NewSQLiteStore derives the sealing key from deviceSecret and the salt kept
// in store_meta, creating the salt on first use. The schema must already be
// migrated (see storage.Open).
func NewSQLiteStore(ctx context.Context, db *sql.DB, deviceSecret []byte) (*SQLiteStore, error) {
	if len(deviceSecret) == 0 {
		return nil, errors.New("securestore: empty device secret")
	}

	salt, err := loadOrCreateSalt(ctx, db)
	if err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db, key: cryptox.DeriveKey(deviceSecret, salt)}, nil
}

func loadOrCreateSalt(ctx context.Context, db dbx.DBTX) ([]byte, error) {
	_, err := db.ExecContext(ctx,
		`INSERT INTO store_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
		saltMetaKey, common.GenerateRandByteArray(cryptox.SaltSize))
	if err != nil {
		return nil, fmt.Errorf("failed to init store salt: %w", err)
	}

	var salt []byte
	if err := db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = ?`, saltMetaKey).Scan(&salt); err != nil {
		return nil, fmt.Errorf("failed to read store salt: %w", err)
	}
	return salt, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	var sealed, nonce []byte
	err := s.db.QueryRowContext(ctx, `SELECT value, nonce FROM secure_items WHERE key = ?`, key).Scan(&sealed, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get item[%s]: %w", key, err)
	}

	plain, err := cryptox.Open(sealed, nonce, s.key, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("%w: item[%s]", ErrUndecryptable, key)
	}
	return string(plain), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	sealed, nonce, err := cryptox.Seal([]byte(value), s.key, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal item[%s]: %w", key, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO secure_items (key, value, nonce, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, nonce = excluded.nonce, updated_at = excluded.updated_at
	`, key, sealed, nonce)
	if err != nil {
		return fmt.Errorf("failed to set item[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.delete(ctx, s.db, key)
}

func (s *SQLiteStore) delete(ctx context.Context, q dbx.DBTX, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := q.ExecContext(ctx, `DELETE FROM secure_items WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete item[%s]: %w", key, err)
	}
	return nil
}

// SetMany writes all items in one transaction.
func (s *SQLiteStore) SetMany(ctx context.Context, items map[string]string) error {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if err := s.set(ctx, tx, k, items[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteMany removes all keys in one transaction.
func (s *SQLiteStore) DeleteMany(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if err := s.delete(ctx, tx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
