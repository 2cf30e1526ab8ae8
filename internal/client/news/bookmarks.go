package news

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gamenews/internal/client/repositories/bookmarks"
	"github.com/dmitrijs2005/gamenews/internal/logging"
)

// Bookmarks resolves saved article ids against a catalog.
type Bookmarks struct {
	repo    bookmarks.Repository
	catalog *Catalog
	log     logging.Logger
}

func NewBookmarks(repo bookmarks.Repository, catalog *Catalog, log logging.Logger) *Bookmarks {
	return &Bookmarks{repo: repo, catalog: catalog, log: log.With("component", "bookmarks")}
}

// Add saves an article. Ids missing from the catalog are rejected with
// ErrUnknownArticle.
func (b *Bookmarks) Add(ctx context.Context, articleID string) (Article, error) {
	a, ok := b.catalog.Get(articleID)
	if !ok {
		return Article{}, fmt.Errorf("%w: %s", ErrUnknownArticle, articleID)
	}
	if err := b.repo.Add(ctx, articleID); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Remove deletes a saved article. Removing one that is not saved is not an
// error.
func (b *Bookmarks) Remove(ctx context.Context, articleID string) error {
	return b.repo.Remove(ctx, articleID)
}

func (b *Bookmarks) IsSaved(ctx context.Context, articleID string) (bool, error) {
	return b.repo.Contains(ctx, articleID)
}

// List returns saved articles in the order they were saved. Ids that are no
// longer in the catalog are skipped.
func (b *Bookmarks) List(ctx context.Context) ([]Article, error) {
	ids, err := b.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Article, 0, len(ids))
	for _, id := range ids {
		a, ok := b.catalog.Get(id)
		if !ok {
			b.log.Warn(ctx, "skipping bookmark for unknown article", "article_id", id)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (b *Bookmarks) Clear(ctx context.Context) error {
	return b.repo.Clear(ctx)
}
