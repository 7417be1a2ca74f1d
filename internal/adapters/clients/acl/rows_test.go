package acl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

func TestMapQuoteRow(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected *domain.FeedQuote
	}{
		{
			name: "full row",
			row:  Row{"#1", "Text", "Author", "Vida", "en", "Sí", "a,b"},
			expected: &domain.FeedQuote{
				Text: "Text", Author: "Author", Category: "Vida",
				Language: "en", Active: true, Tags: "a,b",
			},
		},
		{
			name: "optional cells missing",
			row:  Row{"", "Text", "Author", "Vida"},
			expected: &domain.FeedQuote{
				Text: "Text", Author: "Author", Category: "Vida",
				Language: "es", Active: true,
			},
		},
		{
			name: "blank language defaults",
			row:  Row{"", "Text", "Author", "Vida", "  ", "1"},
			expected: &domain.FeedQuote{
				Text: "Text", Author: "Author", Category: "Vida",
				Language: "es", Active: true,
			},
		},
		{
			name: "unknown active token is inactive",
			row:  Row{"", "Text", "Author", "Vida", "es", "no"},
			expected: &domain.FeedQuote{
				Text: "Text", Author: "Author", Category: "Vida",
				Language: "es", Active: false,
			},
		},
		{
			name: "empty active cell is inactive",
			row:  Row{"", "Text", "Author", "Vida", "es", ""},
			expected: &domain.FeedQuote{
				Text: "Text", Author: "Author", Category: "Vida",
				Language: "es", Active: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapQuoteRow(&tt.row)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMapQuoteRow_Rejected(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{"empty", Row{}},
		{"too short", Row{"", "Text"}},
		{"category cell missing", Row{"", "Text", "Author"}},
		{"blank text", Row{"", " ", "Author", "Vida"}},
		{"blank author", Row{"", "Text", "", "Vida"}},
		{"blank category", Row{"", "Text", "Author", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapQuoteRow(&tt.row)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Nil(t, got)
		})
	}
}

func TestMapQuoteRow_ReportsFirstBlankField(t *testing.T) {
	tests := map[string]Row{
		"text":     {"", "", "", ""},
		"author":   {"", "Text", " ", ""},
		"category": {"", "Text", "Author", ""},
	}

	for field, row := range tests {
		_, err := MapQuoteRow(&row)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestParseActive_Tokens(t *testing.T) {
	for _, token := range []string{"true", "TRUE", "1", "sí", "SÍ", "si", " Si "} {
		row := Row{"", "t", "a", "c", "es", token}
		assert.True(t, parseActive(&row, colActive), "token %q", token)
	}

	for _, token := range []string{"false", "0", "yes", "activo"} {
		row := Row{"", "t", "a", "c", "es", token}
		assert.False(t, parseActive(&row, colActive), "token %q", token)
	}
}

func TestMapCategoryRow(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		row := Row{"Vida", "🌱", "Sobre la vida", "#00ff00", "false"}

		got, err := MapCategoryRow(&row)

		require.NoError(t, err)
		assert.Equal(t, &domain.Category{
			Name: "Vida", Emoji: "🌱", Description: "Sobre la vida", Color: "#00ff00", Active: false,
		}, got)
	})

	t.Run("defaults", func(t *testing.T) {
		row := Row{"Vida"}

		got, err := MapCategoryRow(&row)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategoryEmoji, got.Emoji)
		assert.True(t, got.Active)
	})

	t.Run("missing name", func(t *testing.T) {
		for _, row := range []Row{{}, {" ", "🌱"}} {
			_, err := MapCategoryRow(&row)
			assert.Error(t, err)
		}
	})
}
