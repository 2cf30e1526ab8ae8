// Package bookmarks persists the ids of saved articles in the local SQLite
// database.
//
// Bookmarks are kept in the order they were added. Adding an id that is
// already saved keeps its original position; removing an absent id is a
// no-op. The repository stores ids only and knows nothing about the article
// catalog; resolving ids to articles is the news package's job.
//
// Typical usage
//
//	repo := bookmarks.NewSQLiteRepository(db)
//	_ = repo.Add(ctx, "3")
//	ids, _ := repo.List(ctx)
package bookmarks
