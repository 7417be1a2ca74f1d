// Package ports defines the contracts the app layer depends on.
// Adapters (sqlite store, sheets feed) implement them; app services never
// import an adapter package directly.
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// ShownState narrows a query by the quote-of-the-day marker.
type ShownState int

// Shown states.
const (
	ShownAny ShownState = iota
	ShownOnly
	UnshownOnly
)

// QuoteFilter selects quotes for List and Count.
// Zero value matches every quote.
type QuoteFilter struct {
	Category      string
	Author        string
	FavoritesOnly bool
	Shown         ShownState
}

// RandomFilter selects candidates for a random pick. Invalid quotes are never candidates.
type RandomFilter struct {
	ExcludeIDs []int64
	Category   string
	Author     string
	Shown      ShownState

	// Limit is the number of quotes to return; values below 1 mean 1.
	Limit int
}

// WatchView names a live view over the store.
type WatchView string

// Live views.
const (
	ViewAll       WatchView = "all"
	ViewFavorites WatchView = "favorites"
)

// QuoteStore is the single owner of quote persistence.
//
// Bulk maintenance operations return the number of affected quotes.
// Lists are ordered by descending id unless stated otherwise.
type QuoteStore interface {
	// Insert stores q and returns its id. A zero ID gets a fresh id; an explicit ID replaces.
	Insert(ctx context.Context, q domain.Quote) (int64, error)

	// BulkInsert stores quotes in one transaction; id collisions replace (last write wins).
	BulkInsert(ctx context.Context, quotes []domain.Quote) error

	// Update replaces the quote with q.ID. An absent id is a no-op that returns nil.
	Update(ctx context.Context, q domain.Quote) error

	// Get returns domain.ErrNotFound when the id is absent.
	Get(ctx context.Context, id int64) (domain.Quote, error)

	List(ctx context.Context, filter QuoteFilter) ([]domain.Quote, error)
	Count(ctx context.Context, filter QuoteFilter) (int, error)
	Random(ctx context.Context, filter RandomFilter) ([]domain.Quote, error)

	// Search matches term as a case-insensitive substring of text, author or category.
	// Text matches rank first, then author, then category; ties by ascending id.
	Search(ctx context.Context, term string) ([]domain.Quote, error)

	// FindDuplicate returns the lowest-id quote with the same text and author.
	FindDuplicate(ctx context.Context, text, author string) (domain.Quote, error)

	// Categories lists distinct categories of valid quotes, ascending.
	Categories(ctx context.Context) ([]domain.CategoryCount, error)

	// Authors lists distinct authors of valid quotes, ascending.
	Authors(ctx context.Context) ([]domain.AuthorCount, error)

	CountInvalid(ctx context.Context) (int, error)

	// RecentlyShown lists shown quotes by descending DateShown.
	RecentlyShown(ctx context.Context, limit int) ([]domain.Quote, error)

	// FindByDateShown returns domain.ErrNotFound when no quote was shown on date.
	FindByDateShown(ctx context.Context, date string) (domain.Quote, error)
	ResetAllDatesShown(ctx context.Context) (int, error)
	ClearDateShown(ctx context.Context, date string) (int, error)

	DeleteAll(ctx context.Context) (int, error)
	DeleteByCategory(ctx context.Context, category string) (int, error)
	DeleteByAuthor(ctx context.Context, author string) (int, error)
	DeleteInvalid(ctx context.Context) (int, error)

	// RemoveDuplicates keeps the lowest id per (text, author) pair.
	RemoveDuplicates(ctx context.Context) (int, error)
	ClearFavorites(ctx context.Context) (int, error)

	// Watch emits the current contents of view, then a fresh snapshot after every
	// committed change. The channel closes when ctx is done.
	Watch(ctx context.Context, view WatchView) (<-chan []domain.Quote, error)

	LastSyncAt(ctx context.Context) (*time.Time, error)
	MarkSynced(ctx context.Context, at time.Time) error
}
