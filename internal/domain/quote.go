package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format stored in Quote.DateShown.
const DateLayout = "2006-01-02"

// Quote is a single attributed text with a category label.
type Quote struct {
	// ID is assigned by the store on insert. Zero means not yet persisted.
	ID int64 `json:"id"`

	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`

	IsFavorite bool `json:"isFavorite"`

	// DateShown is the local day (DateLayout) the quote was picked as quote of
	// the day. Nil means unshown since the last reset.
	DateShown *string `json:"dateShown,omitempty"`
}

// Valid reports whether text, author and category are all non-blank.
// Invalid quotes are never selected and are removed by maintenance.
func (q Quote) Valid() bool {
	return strings.TrimSpace(q.Text) != "" &&
		strings.TrimSpace(q.Author) != "" &&
		strings.TrimSpace(q.Category) != ""
}

// Shown reports whether the quote carries a shown marker.
func (q Quote) Shown() bool {
	return q.DateShown != nil
}

// ShownOn reports whether the quote was quote of the day on date.
func (q Quote) ShownOn(date string) bool {
	return q.DateShown != nil && *q.DateShown == date
}

// DuplicateKey identifies quotes that are the same entry imported twice.
type DuplicateKey struct {
	Text   string
	Author string
}

// Key returns the duplicate-detection key of the quote.
func (q Quote) Key() DuplicateKey {
	return DuplicateKey{Text: q.Text, Author: q.Author}
}

// DayOf formats t as a DateShown value in t's location.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// CategoryCount is a category label with the number of quotes carrying it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AuthorCount is an author with the number of quotes attributed to them.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// Stats summarizes the store contents.
type Stats struct {
	TotalQuotes     int        `json:"totalQuotes"`
	FavoriteQuotes  int        `json:"favoriteQuotes"`
	CategoriesCount int        `json:"categoriesCount"`
	AuthorsCount    int        `json:"authorsCount"`
	QuotesShown     int        `json:"quotesShown"`
	QuotesUnshown   int        `json:"quotesUnshown"`
	InvalidQuotes   int        `json:"invalidQuotes"`
	LastSyncAt      *time.Time `json:"lastSyncAt,omitempty"`
}
