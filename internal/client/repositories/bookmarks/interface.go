package bookmarks

import (
	"context"
)

type Repository interface {
	// Add saves id at the end of the list unless it is already saved.
	Add(ctx context.Context, articleID string) error
	Remove(ctx context.Context, articleID string) error
	Contains(ctx context.Context, articleID string) (bool, error)
	// List returns saved ids, oldest first.
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
