package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStore opens a private in-memory store closed at test end.
func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(context.Background(), sqlite.Config{Path: sqlite.MemoryPath}, discardLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func seedQuotes(t *testing.T, store *sqlite.Store, quotes ...domain.Quote) {
	t.Helper()

	require.NoError(t, store.BulkInsert(context.Background(), quotes))
}

func newQuote(text, author, category string) domain.Quote {
	return domain.Quote{Text: text, Author: author, Category: category}
}

func feedQuote(text, author, category string, active bool) domain.FeedQuote {
	return domain.FeedQuote{
		Text:     text,
		Author:   author,
		Category: category,
		Language: domain.DefaultLanguage,
		Active:   active,
	}
}

// fixedClock returns a manual clock at noon UTC on date.
func fixedClock(t *testing.T, date string) *clock.Manual {
	t.Helper()

	day, err := time.Parse(domain.DateLayout, date)
	require.NoError(t, err)

	return clock.NewManual(day.Add(12 * time.Hour))
}
