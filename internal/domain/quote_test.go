package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote_Valid(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		valid bool
	}{
		{"complete", Quote{Text: "t", Author: "a", Category: "c"}, true},
		{"blank text", Quote{Text: "  ", Author: "a", Category: "c"}, false},
		{"empty author", Quote{Text: "t", Author: "", Category: "c"}, false},
		{"whitespace category", Quote{Text: "t", Author: "a", Category: "\t\n"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.quote.Valid())
		})
	}
}

func TestQuote_Shown(t *testing.T) {
	q := Quote{Text: "t", Author: "a", Category: "c"}
	assert.False(t, q.Shown())
	assert.False(t, q.ShownOn("2026-01-01"))

	q.DateShown = StringPtr("2026-01-01")
	assert.True(t, q.Shown())
	assert.True(t, q.ShownOn("2026-01-01"))
	assert.False(t, q.ShownOn("2026-01-02"))
}

func TestQuote_Key(t *testing.T) {
	a := Quote{ID: 1, Text: "t", Author: "a", Category: "x"}
	b := Quote{ID: 2, Text: "t", Author: "a", Category: "y", IsFavorite: true}
	c := Quote{ID: 3, Text: "t", Author: "b", Category: "x"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestDayOf_UsesLocation(t *testing.T) {
	instant := time.Date(2026, time.May, 1, 3, 0, 0, 0, time.UTC)
	mexico := time.FixedZone("CST", -6*60*60)

	assert.Equal(t, "2026-05-01", DayOf(instant))
	assert.Equal(t, "2026-04-30", DayOf(instant.In(mexico)))
}

func TestDefaultQuotes(t *testing.T) {
	quotes := DefaultQuotes()

	assert.Len(t, quotes, 20)

	seen := make(map[DuplicateKey]bool, len(quotes))
	for _, q := range quotes {
		assert.True(t, q.Valid(), "default quote %q must be valid", q.Text)
		assert.Zero(t, q.ID)
		assert.False(t, q.IsFavorite)
		assert.Nil(t, q.DateShown)
		assert.False(t, seen[q.Key()], "duplicate default %q", q.Text)
		seen[q.Key()] = true
	}

	quotes[0].Text = "mutated"
	assert.NotEqual(t, "mutated", DefaultQuotes()[0].Text)
}

func TestSyncResult(t *testing.T) {
	ok := NewSyncSuccess("sync completed", 12)
	assert.True(t, ok.OK())
	assert.Equal(t, "success: sync completed (12 quotes)", ok.String())

	failed := NewSyncErrorf("no connection to %s", "feed")
	assert.False(t, failed.OK())
	assert.Equal(t, SyncError, failed.Kind)
	assert.Equal(t, "error: no connection to feed", failed.String())
	assert.Zero(t, failed.QuotesCount)
}

func TestFeedQuote_ToQuote(t *testing.T) {
	row := FeedQuote{Text: "t", Author: "a", Category: "c", Language: "en", Active: true, Tags: "x,y"}

	q := row.ToQuote()

	assert.Equal(t, Quote{Text: "t", Author: "a", Category: "c"}, q)
}
