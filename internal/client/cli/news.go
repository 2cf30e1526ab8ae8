package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamenews/internal/client/news"
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func formatArticle(a news.Article) string {
	published := a.PublishedAt
	if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
		published = t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("[%s] %s\n      %s · %s · %s", a.ID, a.Title, a.Source, published, a.ReadTime)
}

// News prints the feed of one category: the featured article, then the rest.
func (a *App) News(_ context.Context, category string) error {
	if category == "" {
		category = news.CategoryAll
	}
	if !a.catalog.HasCategory(category) {
		a.println("Unknown category:", category, "(see 'categories')")
		return nil
	}

	lead, rest, ok := a.catalog.Featured(category)
	if !ok {
		a.println("No articles in this category yet")
		return nil
	}

	a.println("Featured")
	a.println(formatArticle(lead))
	a.println("     ", lead.Description)
	if len(rest) > 0 {
		a.println()
		a.println("Latest News")
		for _, art := range rest {
			a.println(formatArticle(art))
		}
	}
	return nil
}

func (a *App) Categories(_ context.Context) error {
	for _, c := range a.catalog.Categories() {
		a.println(fmt.Sprintf("  %-9s %s", c.ID, c.Name))
	}
	return nil
}

// Search prints the articles matching query. A first word of the form
// "#category" narrows the search to that category.
func (a *App) Search(_ context.Context, args []string) error {
	category := news.CategoryAll
	if len(args) > 0 && strings.HasPrefix(args[0], "#") {
		category = strings.TrimPrefix(args[0], "#")
		args = args[1:]
		if !a.catalog.HasCategory(category) {
			a.println("Unknown category:", category, "(see 'categories')")
			return nil
		}
	}

	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		a.println("Usage: search [#category] <query>")
		return nil
	}

	results := a.catalog.Search(query, category)
	if len(results) == 0 {
		a.println("No results found")
		a.println("Try searching with different keywords or check your spelling")
		return nil
	}

	a.println(fmt.Sprintf("%s for %q", plural(len(results), "result"), query))
	for _, art := range results {
		a.println(formatArticle(art))
	}
	return nil
}

func (a *App) Bookmark(ctx context.Context, id string) error {
	art, err := a.bookmarks.Add(ctx, id)
	if errors.Is(err, news.ErrUnknownArticle) {
		a.println("Unknown article:", id)
		return err
	}
	if err != nil {
		a.log.Error(ctx, "failed to save bookmark", "article_id", id, "error", err)
		a.println("Could not save the article")
		return err
	}
	a.println("Saved:", art.Title)
	return nil
}

func (a *App) Unbookmark(ctx context.Context, id string) error {
	if err := a.bookmarks.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "failed to remove bookmark", "article_id", id, "error", err)
		a.println("Could not remove the article")
		return err
	}
	a.println("Removed from saved articles")
	return nil
}

// Bookmarks prints the saved articles.
func (a *App) Bookmarks(ctx context.Context) error {
	list, err := a.bookmarks.List(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list bookmarks", "error", err)
		a.println("Could not load saved articles")
		return err
	}

	if len(list) == 0 {
		a.println("No saved articles")
		a.println("Articles you bookmark will appear here for easy access later")
		return nil
	}

	a.println(plural(len(list), "article"), "saved")
	for _, art := range list {
		a.println(formatArticle(art))
	}
	return nil
}

func (a *App) ClearBookmarks(ctx context.Context) error {
	if err := a.bookmarks.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear bookmarks", "error", err)
		a.println("Could not clear saved articles")
		return err
	}
	a.println("All saved articles removed")
	return nil
}
