package bookmarks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gamenews/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, articleID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookmarks (article_id, seq)
		SELECT ?, COALESCE(MAX(seq), 0) + 1 FROM bookmarks WHERE true
		ON CONFLICT(article_id) DO NOTHING
	`, articleID)
	if err != nil {
		return fmt.Errorf("failed to add bookmark[%s]: %w", articleID, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, articleID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE article_id = ?`, articleID)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark[%s]: %w", articleID, err)
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, articleID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookmarks WHERE article_id = ?`, articleID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark[%s]: %w", articleID, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT article_id FROM bookmarks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		result = append(result, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmark rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks`)
	if err != nil {
		return fmt.Errorf("failed to clear bookmarks: %w", err)
	}
	return nil
}
