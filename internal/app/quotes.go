// Package app contains the use cases of the daily quote service: syncing the
// local cache with the remote feed, picking the quote of the day, and the
// read and maintenance views over the store.
package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

const (
	// DefaultSuggestLimit is the number of author suggestions when none is requested.
	DefaultSuggestLimit = 5

	// minSuggestDistance is the edit distance always tolerated by SuggestAuthors.
	minSuggestDistance = 2
)

// QuoteServiceConfig contains the dependencies of QuoteService.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger
}

// QuoteService is the read, favorites and maintenance facade over the store.
//
// List-style reads never fail: store errors are logged and an empty result
// is returned, so a broken store shows up as an empty screen rather than an
// error page.
type QuoteService struct {
	store  ports.QuoteStore
	logger *slog.Logger
}

// NewQuoteService creates a quote service. It panics if Store is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &QuoteService{
		store:  cfg.Store,
		logger: cfg.Logger,
	}
}

// WatchAll streams every quote, newest first, after each store change.
func (s *QuoteService) WatchAll(ctx context.Context) (<-chan []domain.Quote, error) {
	return s.store.Watch(ctx, ports.ViewAll)
}

// WatchFavorites streams the favorite quotes, newest first, after each store change.
func (s *QuoteService) WatchFavorites(ctx context.Context) (<-chan []domain.Quote, error) {
	return s.store.Watch(ctx, ports.ViewFavorites)
}

// GetQuote returns the quote with id.
func (s *QuoteService) GetQuote(ctx context.Context, id int64) (domain.Quote, error) {
	return s.store.Get(ctx, id)
}

// AddQuote stores a new quote. An existing quote with the same text and
// author is returned instead of inserting a duplicate.
func (s *QuoteService) AddQuote(ctx context.Context, q domain.Quote) (domain.Quote, bool, error) {
	q.Text = strings.TrimSpace(q.Text)
	q.Author = strings.TrimSpace(q.Author)
	q.Category = strings.TrimSpace(q.Category)

	if !q.Valid() {
		return domain.Quote{}, false, domain.NewValidationError("quote", "text, author and category are required")
	}

	existing, err := s.store.FindDuplicate(ctx, q.Text, q.Author)
	if err == nil {
		return existing, false, nil
	}

	if !domain.IsNotFound(err) {
		return domain.Quote{}, false, fmt.Errorf("checking for duplicate: %w", err)
	}

	q.ID = 0
	q.DateShown = nil

	id, err := s.store.Insert(ctx, q)
	if err != nil {
		return domain.Quote{}, false, fmt.Errorf("adding quote: %w", err)
	}

	q.ID = id

	return q, true, nil
}

// ToggleFavorite flips the favorite flag of q, persists it and returns the new value.
func (s *QuoteService) ToggleFavorite(ctx context.Context, q domain.Quote) (bool, error) {
	q.IsFavorite = !q.IsFavorite

	if err := s.store.Update(ctx, q); err != nil {
		return !q.IsFavorite, fmt.Errorf("toggling favorite on quote %d: %w", q.ID, err)
	}

	return q.IsFavorite, nil
}

// SetFavorite loads the quote with id and sets its favorite flag.
func (s *QuoteService) SetFavorite(ctx context.Context, id int64, favorite bool) (domain.Quote, error) {
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Quote{}, err
	}

	if q.IsFavorite == favorite {
		return q, nil
	}

	q.IsFavorite = favorite

	if err := s.store.Update(ctx, q); err != nil {
		return domain.Quote{}, fmt.Errorf("setting favorite on quote %d: %w", id, err)
	}

	return q, nil
}

// ListQuotes returns the quotes matching filter, newest first.
func (s *QuoteService) ListQuotes(ctx context.Context, filter ports.QuoteFilter) []domain.Quote {
	quotes, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list quotes", slog.Any("error", err))
		return []domain.Quote{}
	}

	return quotes
}

// AllQuotes returns every quote, newest first.
func (s *QuoteService) AllQuotes(ctx context.Context) []domain.Quote {
	return s.ListQuotes(ctx, ports.QuoteFilter{})
}

// Favorites returns the favorite quotes, newest first.
func (s *QuoteService) Favorites(ctx context.Context) []domain.Quote {
	return s.ListQuotes(ctx, ports.QuoteFilter{FavoritesOnly: true})
}

// QuotesByCategory returns the quotes labeled category, newest first.
func (s *QuoteService) QuotesByCategory(ctx context.Context, category string) []domain.Quote {
	return s.ListQuotes(ctx, ports.QuoteFilter{Category: category})
}

// QuotesByAuthor returns the quotes attributed to author, newest first.
func (s *QuoteService) QuotesByAuthor(ctx context.Context, author string) []domain.Quote {
	return s.ListQuotes(ctx, ports.QuoteFilter{Author: author})
}

// CategoriesWithCount returns each category of a valid quote with its size.
func (s *QuoteService) CategoriesWithCount(ctx context.Context) []domain.CategoryCount {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list categories", slog.Any("error", err))
		return []domain.CategoryCount{}
	}

	return categories
}

// Categories returns the distinct categories, ascending.
func (s *QuoteService) Categories(ctx context.Context) []string {
	counts := s.CategoriesWithCount(ctx)

	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Category
	}

	return names
}

// AuthorsWithCount returns each author of a valid quote with their quote count.
func (s *QuoteService) AuthorsWithCount(ctx context.Context) []domain.AuthorCount {
	authors, err := s.store.Authors(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list authors", slog.Any("error", err))
		return []domain.AuthorCount{}
	}

	return authors
}

// Authors returns the distinct authors, ascending.
func (s *QuoteService) Authors(ctx context.Context) []string {
	counts := s.AuthorsWithCount(ctx)

	names := make([]string, len(counts))
	for i, a := range counts {
		names[i] = a.Author
	}

	return names
}

// SearchQuotes matches text case-insensitively against text, author and
// category. Text matches come first. A blank term matches nothing.
func (s *QuoteService) SearchQuotes(ctx context.Context, text string) []domain.Quote {
	if strings.TrimSpace(text) == "" {
		return []domain.Quote{}
	}

	quotes, err := s.store.Search(ctx, text)
	if err != nil {
		s.logger.WarnContext(ctx, "search failed", slog.String("term", text), slog.Any("error", err))
		return []domain.Quote{}
	}

	return quotes
}

type authorMatch struct {
	name     string
	distance int
}

// SuggestAuthors returns up to limit authors whose name, or any word of it,
// is within a small edit distance of text. Closest names come first.
func (s *QuoteService) SuggestAuthors(ctx context.Context, text string, limit int) []string {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return []string{}
	}

	if limit < 1 {
		limit = DefaultSuggestLimit
	}

	maxDistance := max(minSuggestDistance, utf8.RuneCountInString(term)/3)

	var matches []authorMatch

	for _, author := range s.Authors(ctx) {
		d := authorDistance(term, strings.ToLower(author))
		if d <= maxDistance {
			matches = append(matches, authorMatch{name: author, distance: d})
		}
	}

	slices.SortFunc(matches, func(a, b authorMatch) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), cmp.Compare(a.name, b.name))
	})

	suggestions := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		suggestions = append(suggestions, m.name)
	}

	return suggestions
}

func authorDistance(term, author string) int {
	best := levenshtein.ComputeDistance(term, author)

	for word := range strings.FieldsSeq(author) {
		best = min(best, levenshtein.ComputeDistance(term, word))
	}

	return best
}

// RandomQuote returns one random valid quote, or nil when the store has none.
func (s *QuoteService) RandomQuote(ctx context.Context) *domain.Quote {
	return s.RandomQuoteExcluding(ctx, nil)
}

// RandomQuoteExcluding returns a random quote whose id is not in excludeIDs.
// When every quote is excluded it falls back to any random quote; nil means
// the store is empty.
func (s *QuoteService) RandomQuoteExcluding(ctx context.Context, excludeIDs []int64) *domain.Quote {
	quotes := s.RandomQuotes(ctx, 1, excludeIDs)
	if len(quotes) == 0 {
		return nil
	}

	return &quotes[0]
}

// RandomQuotes returns up to n random quotes avoiding excludeIDs, falling
// back to an unfiltered pick when the exclusion leaves nothing.
func (s *QuoteService) RandomQuotes(ctx context.Context, n int, excludeIDs []int64) []domain.Quote {
	return s.randomExcluding(ctx, ports.RandomFilter{ExcludeIDs: excludeIDs, Limit: max(n, 1)})
}

// RandomQuoteFromCategory returns a random quote labeled category avoiding
// excludeIDs, or nil. Exclusion falls back like RandomQuoteExcluding but
// never leaves the category.
func (s *QuoteService) RandomQuoteFromCategory(ctx context.Context, category string, excludeIDs []int64) *domain.Quote {
	return first(s.randomExcluding(ctx, ports.RandomFilter{Category: category, ExcludeIDs: excludeIDs, Limit: 1}))
}

// RandomQuoteFromAuthor returns a random quote by author avoiding
// excludeIDs, or nil.
func (s *QuoteService) RandomQuoteFromAuthor(ctx context.Context, author string, excludeIDs []int64) *domain.Quote {
	return first(s.randomExcluding(ctx, ports.RandomFilter{Author: author, ExcludeIDs: excludeIDs, Limit: 1}))
}

// randomExcluding retries without filter.ExcludeIDs when they rule out every
// candidate.
func (s *QuoteService) randomExcluding(ctx context.Context, filter ports.RandomFilter) []domain.Quote {
	quotes := s.random(ctx, filter)
	if len(quotes) > 0 || len(filter.ExcludeIDs) == 0 {
		return quotes
	}

	s.logger.DebugContext(ctx, "every candidate excluded, picking without exclusions",
		slog.Int("excluded", len(filter.ExcludeIDs)),
	)

	filter.ExcludeIDs = nil

	return s.random(ctx, filter)
}

func (s *QuoteService) random(ctx context.Context, filter ports.RandomFilter) []domain.Quote {
	quotes, err := s.store.Random(ctx, filter)
	if err != nil {
		s.logger.WarnContext(ctx, "random pick failed", slog.Any("error", err))
		return []domain.Quote{}
	}

	return quotes
}

func first(quotes []domain.Quote) *domain.Quote {
	if len(quotes) == 0 {
		return nil
	}

	return &quotes[0]
}

// Stats gathers the store counters concurrently.
func (s *QuoteService) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	count := func(dst *int, filter ports.QuoteFilter) func(context.Context) error {
		return func(ctx context.Context) (err error) {
			*dst, err = s.store.Count(ctx, filter)
			return err
		}
	}

	err := runAll(ctx,
		count(&stats.TotalQuotes, ports.QuoteFilter{}),
		count(&stats.FavoriteQuotes, ports.QuoteFilter{FavoritesOnly: true}),
		count(&stats.QuotesShown, ports.QuoteFilter{Shown: ports.ShownOnly}),
		count(&stats.QuotesUnshown, ports.QuoteFilter{Shown: ports.UnshownOnly}),
		func(ctx context.Context) (err error) {
			stats.InvalidQuotes, err = s.store.CountInvalid(ctx)
			return err
		},
		func(ctx context.Context) error {
			categories, err := s.store.Categories(ctx)
			stats.CategoriesCount = len(categories)
			return err
		},
		func(ctx context.Context) error {
			authors, err := s.store.Authors(ctx)
			stats.AuthorsCount = len(authors)
			return err
		},
		func(ctx context.Context) (err error) {
			stats.LastSyncAt, err = s.store.LastSyncAt(ctx)
			return err
		},
	)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("gathering stats: %w", err)
	}

	return stats, nil
}

// ClearFavorites unmarks every favorite.
func (s *QuoteService) ClearFavorites(ctx context.Context) (int, error) {
	return s.maintain(ctx, "clear_favorites", s.store.ClearFavorites)
}

// DeleteInvalid removes quotes with a blank text, author or category.
func (s *QuoteService) DeleteInvalid(ctx context.Context) (int, error) {
	return s.maintain(ctx, "delete_invalid", s.store.DeleteInvalid)
}

// RemoveDuplicates keeps the lowest id of each (text, author) pair.
func (s *QuoteService) RemoveDuplicates(ctx context.Context) (int, error) {
	return s.maintain(ctx, "remove_duplicates", s.store.RemoveDuplicates)
}

// DeleteByCategory removes every quote labeled category.
func (s *QuoteService) DeleteByCategory(ctx context.Context, category string) (int, error) {
	if strings.TrimSpace(category) == "" {
		return 0, domain.NewValidationError("category", "must not be blank")
	}

	return s.maintain(ctx, "delete_by_category", func(ctx context.Context) (int, error) {
		return s.store.DeleteByCategory(ctx, category)
	})
}

// DeleteByAuthor removes every quote attributed to author.
func (s *QuoteService) DeleteByAuthor(ctx context.Context, author string) (int, error) {
	if strings.TrimSpace(author) == "" {
		return 0, domain.NewValidationError("author", "must not be blank")
	}

	return s.maintain(ctx, "delete_by_author", func(ctx context.Context) (int, error) {
		return s.store.DeleteByAuthor(ctx, author)
	})
}

func (s *QuoteService) maintain(ctx context.Context, name string, fn func(context.Context) (int, error)) (int, error) {
	n, err := fn(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "maintenance completed", slog.String("task", name), slog.Int("affected", n))

	return n, nil
}
