// Package news is the read side of the app: a fixed catalog of articles
// grouped by category, full-text search over it, and the user's saved
// articles.
package news

import (
	"errors"
	"slices"
	"strings"
)

// CategoryAll selects every article.
const CategoryAll = "all"

var ErrUnknownArticle = errors.New("news: unknown article")

type Article struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Source      string
	PublishedAt string
	Category    string
	ReadTime    string
	URL         string
}

type Category struct {
	ID   string
	Name string
	Icon string
}

// Catalog is an ordered, read-only article list. It is safe for concurrent
// use.
type Catalog struct {
	articles   []Article
	categories []Category
	index      map[string]int
}

// NewCatalog copies articles and categories. Later duplicates of an article
// id are ignored by Get.
func NewCatalog(categories []Category, articles []Article) *Catalog {
	c := &Catalog{
		articles:   slices.Clone(articles),
		categories: slices.Clone(categories),
		index:      make(map[string]int, len(articles)),
	}
	for i, a := range c.articles {
		if _, ok := c.index[a.ID]; !ok {
			c.index[a.ID] = i
		}
	}
	return c
}

// Default returns the catalog shipped with the app.
func Default() *Catalog {
	return NewCatalog(defaultCategories, defaultArticles)
}

func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// HasCategory reports whether id names a category of this catalog.
func (c *Catalog) HasCategory(id string) bool {
	return slices.ContainsFunc(c.categories, func(cat Category) bool { return cat.ID == id })
}

// ByCategory returns the articles of one category in catalog order.
// CategoryAll and the empty string return everything.
func (c *Catalog) ByCategory(category string) []Article {
	if category == "" || category == CategoryAll {
		return slices.Clone(c.articles)
	}
	var out []Article
	for _, a := range c.articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Featured splits a category into its lead article and the rest. ok is false
// when the category is empty.
func (c *Catalog) Featured(category string) (lead Article, rest []Article, ok bool) {
	list := c.ByCategory(category)
	if len(list) == 0 {
		return Article{}, nil, false
	}
	return list[0], list[1:], true
}

// Search filters by category, then keeps articles whose title, description
// or source contains query, ignoring case. A blank query only filters by
// category.
func (c *Catalog) Search(query, category string) []Article {
	list := c.ByCategory(category)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	var out []Article
	for _, a := range list {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) ||
			strings.Contains(strings.ToLower(a.Source), q) {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) Get(id string) (Article, bool) {
	i, ok := c.index[id]
	if !ok {
		return Article{}, false
	}
	return c.articles[i], true
}
