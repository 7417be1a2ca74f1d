package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Get returns the quote with id.
func (s *Store) Get(ctx context.Context, id int64) (domain.Quote, error) {
	defer observe("get")()

	row := s.db.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, notFound(id)
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("getting quote %d: %w", id, err)
	}

	return q, nil
}

// List returns the quotes matching filter, newest first.
func (s *Store) List(ctx context.Context, filter ports.QuoteFilter) ([]domain.Quote, error) {
	defer observe("list")()

	w := filterClause(filter)

	return s.queryQuotes(ctx, `SELECT `+quoteColumns+` FROM quotes`+w.String()+` ORDER BY id DESC`, w.args...)
}

// Count returns the number of quotes matching filter.
func (s *Store) Count(ctx context.Context, filter ports.QuoteFilter) (int, error) {
	defer observe("count")()

	w := filterClause(filter)

	return s.queryInt(ctx, `SELECT COUNT(*) FROM quotes`+w.String(), w.args...)
}

// CountInvalid returns the number of quotes with a blank required field.
func (s *Store) CountInvalid(ctx context.Context) (int, error) {
	defer observe("count_invalid")()

	return s.queryInt(ctx, `SELECT COUNT(*) FROM quotes WHERE NOT `+validSQL)
}

// Random returns up to filter.Limit valid quotes in random order.
func (s *Store) Random(ctx context.Context, filter ports.RandomFilter) ([]domain.Quote, error) {
	defer observe("random")()

	limit := filter.Limit
	if limit < 1 {
		limit = 1
	}

	var w whereClause

	w.add(validSQL)

	if len(filter.ExcludeIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.ExcludeIDs)), ",")
		args := make([]any, len(filter.ExcludeIDs))

		for i, id := range filter.ExcludeIDs {
			args[i] = id
		}

		w.add("id NOT IN ("+placeholders+")", args...)
	}

	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}

	if filter.Author != "" {
		w.add("author = ?", filter.Author)
	}

	w.addShown(filter.Shown)

	args := append(w.args, limit)

	return s.queryQuotes(ctx, `SELECT `+quoteColumns+` FROM quotes`+w.String()+` ORDER BY RANDOM() LIMIT ?`, args...)
}

// Search ranks text matches first, then author, then category.
func (s *Store) Search(ctx context.Context, term string) ([]domain.Quote, error) {
	defer observe("search")()

	folded := strings.ToLower(strings.TrimSpace(term))
	if folded == "" {
		return []domain.Quote{}, nil
	}

	return s.queryQuotes(ctx, `
		SELECT `+quoteColumns+` FROM quotes
		WHERE instr(casefold(text), ?1) > 0
		   OR instr(casefold(author), ?1) > 0
		   OR instr(casefold(category), ?1) > 0
		ORDER BY CASE
			WHEN instr(casefold(text), ?1) > 0 THEN 1
			WHEN instr(casefold(author), ?1) > 0 THEN 2
			WHEN instr(casefold(category), ?1) > 0 THEN 3
			ELSE 4
		END, id ASC`, folded)
}

// FindDuplicate returns the lowest-id quote with the same text and author.
func (s *Store) FindDuplicate(ctx context.Context, text, author string) (domain.Quote, error) {
	defer observe("find_duplicate")()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE text = ? AND author = ? ORDER BY id ASC LIMIT 1`, text, author)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, domain.NewNotFoundError("quote", "")
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("finding duplicate quote: %w", err)
	}

	return q, nil
}

// FindByDateShown returns the quote shown on date.
func (s *Store) FindByDateShown(ctx context.Context, date string) (domain.Quote, error) {
	defer observe("find_by_date_shown")()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE date_shown = ? ORDER BY id ASC LIMIT 1`, date)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, domain.NewNotFoundError("quote of "+date, "")
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("finding quote shown on %s: %w", date, err)
	}

	return q, nil
}

// RecentlyShown lists shown quotes, most recent day first.
func (s *Store) RecentlyShown(ctx context.Context, limit int) ([]domain.Quote, error) {
	defer observe("recently_shown")()

	if limit < 1 {
		limit = 1
	}

	return s.queryQuotes(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE date_shown IS NOT NULL ORDER BY date_shown DESC, id DESC LIMIT ?`, limit)
}

// Categories lists distinct categories of valid quotes with their counts.
func (s *Store) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	defer observe("categories")()

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM quotes WHERE `+validSQL+` GROUP BY category ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CategoryCount, 0)

	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		out = append(out, c)
	}

	return out, rows.Err()
}

// Authors lists distinct authors of valid quotes with their counts.
func (s *Store) Authors(ctx context.Context) ([]domain.AuthorCount, error) {
	defer observe("authors")()

	rows, err := s.db.QueryContext(ctx,
		`SELECT author, COUNT(*) FROM quotes WHERE `+validSQL+` GROUP BY author ORDER BY author ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AuthorCount, 0)

	for rows.Next() {
		var a domain.AuthorCount
		if err := rows.Scan(&a.Author, &a.Count); err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) queryQuotes(ctx context.Context, query string, args ...any) ([]domain.Quote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0)

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	return quotes, nil
}

func (s *Store) queryInt(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(sc scanner) (domain.Quote, error) {
	var (
		q    domain.Quote
		date sql.NullString
	)

	if err := sc.Scan(&q.ID, &q.Text, &q.Author, &q.Category, &q.IsFavorite, &date); err != nil {
		return domain.Quote{}, err
	}

	if date.Valid {
		q.DateShown = &date.String
	}

	return q, nil
}

// whereClause accumulates AND-ed conditions and their arguments.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereClause) addShown(state ports.ShownState) {
	switch state {
	case ports.ShownOnly:
		w.add("date_shown IS NOT NULL")
	case ports.UnshownOnly:
		w.add("date_shown IS NULL")
	case ports.ShownAny:
	}
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(w.conds, " AND ")
}

func filterClause(f ports.QuoteFilter) whereClause {
	var w whereClause

	if f.Category != "" {
		w.add("category = ?", f.Category)
	}

	if f.Author != "" {
		w.add("author = ?", f.Author)
	}

	if f.FavoritesOnly {
		w.add("is_favorite = 1")
	}

	w.addShown(f.Shown)

	return w
}
