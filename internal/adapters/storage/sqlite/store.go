package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

var _ ports.QuoteStore = (*Store)(nil)

const (
	quoteColumns = "id, text, author, category, is_favorite, date_shown"

	// validSQL mirrors domain.Quote.Valid.
	validSQL = "(trim(text) <> '' AND trim(author) <> '' AND trim(category) <> '')"

	metaLastSync = "last_sync_at"
)

// Insert stores q. A zero ID gets a fresh id, an explicit ID replaces any existing row.
func (s *Store) Insert(ctx context.Context, q domain.Quote) (int64, error) {
	defer observe("insert")()

	id, err := insertQuote(ctx, s.db, q)
	if err != nil {
		return 0, err
	}

	s.hub.publish()

	return id, nil
}

// BulkInsert stores quotes in a single transaction.
func (s *Store) BulkInsert(ctx context.Context, quotes []domain.Quote) error {
	defer observe("bulk_insert")()

	if len(quotes) == 0 {
		return nil
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, q := range quotes {
			if _, err := insertQuote(ctx, tx, q); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.hub.publish()

	return nil
}

// Update replaces every field of the quote with q.ID.
// An absent id is a no-op: it is logged at debug level and nil is returned.
func (s *Store) Update(ctx context.Context, q domain.Quote) error {
	defer observe("update")()

	res, err := s.db.ExecContext(ctx,
		`UPDATE quotes SET text = ?, author = ?, category = ?, is_favorite = ?, date_shown = ? WHERE id = ?`,
		q.Text, q.Author, q.Category, q.IsFavorite, nullableDate(q.DateShown), q.ID)
	if err != nil {
		return fmt.Errorf("updating quote %d: %w", q.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating quote %d: %w", q.ID, err)
	}

	if n == 0 {
		s.logger.DebugContext(ctx, "update matched no quote", slog.Int64("quote_id", q.ID))
		return nil
	}

	s.hub.publish()

	return nil
}

// ResetAllDatesShown clears the shown marker on every quote.
func (s *Store) ResetAllDatesShown(ctx context.Context) (int, error) {
	return s.exec(ctx, "reset_dates_shown", `UPDATE quotes SET date_shown = NULL WHERE date_shown IS NOT NULL`)
}

// ClearDateShown clears the shown marker of quotes shown on date.
func (s *Store) ClearDateShown(ctx context.Context, date string) (int, error) {
	return s.exec(ctx, "clear_date_shown", `UPDATE quotes SET date_shown = NULL WHERE date_shown = ?`, date)
}

// ClearFavorites unmarks every favorite.
func (s *Store) ClearFavorites(ctx context.Context) (int, error) {
	return s.exec(ctx, "clear_favorites", `UPDATE quotes SET is_favorite = 0 WHERE is_favorite = 1`)
}

// DeleteAll removes every quote.
func (s *Store) DeleteAll(ctx context.Context) (int, error) {
	return s.exec(ctx, "delete_all", `DELETE FROM quotes`)
}

// DeleteByCategory removes the quotes of a category.
func (s *Store) DeleteByCategory(ctx context.Context, category string) (int, error) {
	return s.exec(ctx, "delete_by_category", `DELETE FROM quotes WHERE category = ?`, category)
}

// DeleteByAuthor removes the quotes of an author.
func (s *Store) DeleteByAuthor(ctx context.Context, author string) (int, error) {
	return s.exec(ctx, "delete_by_author", `DELETE FROM quotes WHERE author = ?`, author)
}

// DeleteInvalid removes quotes with a blank text, author or category.
func (s *Store) DeleteInvalid(ctx context.Context) (int, error) {
	return s.exec(ctx, "delete_invalid", `DELETE FROM quotes WHERE NOT `+validSQL)
}

// RemoveDuplicates keeps the lowest id of each (text, author) pair.
func (s *Store) RemoveDuplicates(ctx context.Context) (int, error) {
	return s.exec(ctx, "remove_duplicates",
		`DELETE FROM quotes WHERE id NOT IN (SELECT MIN(id) FROM quotes GROUP BY text, author)`)
}

// LastSyncAt returns the time of the last successful remote sync, nil if none.
func (s *Store) LastSyncAt(ctx context.Context) (*time.Time, error) {
	defer observe("last_sync_at")()

	var raw string

	err := s.db.QueryRowContext(ctx, `SELECT value FROM sync_meta WHERE key = ?`, metaLastSync).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading last sync time: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("parsing last sync time %q: %w", raw, err)
	}

	return &at, nil
}

// MarkSynced records at as the last successful remote sync.
func (s *Store) MarkSynced(ctx context.Context, at time.Time) error {
	defer observe("mark_synced")()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaLastSync, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording sync time: %w", err)
	}

	return nil
}

// exec runs a bulk statement, publishes a change when rows were affected and
// returns the affected count.
func (s *Store) exec(ctx context.Context, op, query string, args ...any) (int, error) {
	defer observe(op)()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ReplaceAll(op, "_", " "), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ReplaceAll(op, "_", " "), err)
	}

	if n > 0 {
		s.hub.publish()
	}

	return int(n), nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertQuote(ctx context.Context, db execer, q domain.Quote) (int64, error) {
	var (
		res sql.Result
		err error
	)

	if q.ID == 0 {
		res, err = db.ExecContext(ctx,
			`INSERT INTO quotes (text, author, category, is_favorite, date_shown) VALUES (?, ?, ?, ?, ?)`,
			q.Text, q.Author, q.Category, q.IsFavorite, nullableDate(q.DateShown))
	} else {
		res, err = db.ExecContext(ctx,
			`INSERT OR REPLACE INTO quotes (id, text, author, category, is_favorite, date_shown) VALUES (?, ?, ?, ?, ?, ?)`,
			q.ID, q.Text, q.Author, q.Category, q.IsFavorite, nullableDate(q.DateShown))
	}

	if err != nil {
		return 0, fmt.Errorf("inserting quote: %w", err)
	}

	if q.ID != 0 {
		return q.ID, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}

	return id, nil
}

func nullableDate(d *string) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *d, Valid: true}
}

func notFound(id int64) error {
	return domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
}
