package dto

import (
	"errors"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Query parameter values for ListQuotesQuery.Shown.
const (
	ShownOnly   = "shown"
	UnshownOnly = "unshown"
)

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	ID         int64   `json:"id"`
	Text       string  `json:"text"`
	Author     string  `json:"author"`
	Category   string  `json:"category"`
	IsFavorite bool    `json:"isFavorite"`
	DateShown  *string `json:"dateShown,omitempty"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		Category:   q.Category,
		IsFavorite: q.IsFavorite,
		DateShown:  q.DateShown,
	}
}

// NewQuoteResponses converts a slice of domain quotes. The result is never nil.
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}

// CreateQuoteRequest is the body of POST /api/v1/quotes.
type CreateQuoteRequest struct {
	Text     string `json:"text"     validate:"required,notempty,max=2000"`
	Author   string `json:"author"   validate:"required,notempty,max=200"`
	Category string `json:"category" validate:"required,notempty,max=100"`
}

// ToDomain converts the request to an unsaved quote.
func (r *CreateQuoteRequest) ToDomain() domain.Quote {
	return domain.Quote{Text: r.Text, Author: r.Author, Category: r.Category}
}

// FavoriteRequest is the body of PUT /api/v1/quotes/:id/favorite.
type FavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" validate:"required"`
}

// ListQuotesQuery filters GET /api/v1/quotes.
type ListQuotesQuery struct {
	PaginationRequest

	Category  string `form:"category"  validate:"omitempty,max=100"`
	Author    string `form:"author"    validate:"omitempty,max=200"`
	Favorites bool   `form:"favorites"`
	Shown     string `form:"shown"     validate:"omitempty,oneof=shown unshown"`
}

// Filter converts the query to a store filter.
func (q *ListQuotesQuery) Filter() ports.QuoteFilter {
	filter := ports.QuoteFilter{
		Category:      q.Category,
		Author:        q.Author,
		FavoritesOnly: q.Favorites,
	}

	switch q.Shown {
	case ShownOnly:
		filter.Shown = ports.ShownOnly
	case UnshownOnly:
		filter.Shown = ports.UnshownOnly
	}

	return filter
}

// RandomQuery parameterizes GET /api/v1/quotes/random. Exclude accepts both
// repeated parameters and a comma-separated list.
type RandomQuery struct {
	Count    int     `form:"count"    validate:"omitempty,min=1,max=50"`
	Exclude  []int64 `form:"exclude"  collection_format:"csv"`
	Category string  `form:"category" validate:"omitempty,max=100"`
	Author   string  `form:"author"   validate:"omitempty,max=200"`
}

// Validate rejects non-positive excluded ids and combined filters.
func (q *RandomQuery) Validate() error {
	for _, id := range q.Exclude {
		if id <= 0 {
			return errors.New("exclude: ids must be positive")
		}
	}

	if q.Category != "" && q.Author != "" {
		return errors.New("category and author cannot be combined")
	}

	return nil
}

// SearchQuery is the query of GET /api/v1/quotes/search.
type SearchQuery struct {
	Q string `form:"q" validate:"max=200"`
}

// SuggestQuery is the query of GET /api/v1/authors/suggest.
type SuggestQuery struct {
	Q     string `form:"q"     validate:"required,notempty,max=200"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=20"`
}

// HistoryQuery is the query of GET /api/v1/today/history.
type HistoryQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// GetLimit returns the limit, defaulting to DefaultLimit.
func (q *HistoryQuery) GetLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}

	return q.Limit
}

// SyncQuery is the query of POST /api/v1/sync.
type SyncQuery struct {
	Force bool `form:"force"`
}

// FavoriteResponse reports the favorite flag after a toggle.
type FavoriteResponse struct {
	ID         int64 `json:"id"`
	IsFavorite bool  `json:"isFavorite"`
}

// AffectedResponse reports how many quotes a maintenance operation changed.
type AffectedResponse struct {
	Operation string `json:"operation"`
	Affected  int    `json:"affected"`
}

// TodayResponse is the quote of the day with its date.
type TodayResponse struct {
	Date  string        `json:"date"`
	Quote QuoteResponse `json:"quote"`
}
