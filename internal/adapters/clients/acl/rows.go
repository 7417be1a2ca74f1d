package acl

import (
	"strings"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// Quote row columns. Column 0 is a free-form label kept by sheet editors.
const (
	colLabel    = 0
	colText     = 1
	colAuthor   = 2
	colCategory = 3
	colLanguage = 4
	colActive   = 5
	colTags     = 6
)

// Category row columns.
const (
	colCategoryName        = 0
	colCategoryEmoji       = 1
	colCategoryDescription = 2
	colCategoryColor       = 3
	colCategoryActive      = 4
)

// minQuoteCells is the shortest row considered for mapping.
const minQuoteCells = 3

// Row is one spreadsheet row of string cells.
type Row []string

// cell returns the cell at i and whether it exists.
func (r Row) cell(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}

	return r[i], true
}

// MapQuoteRow maps a quote row. Rows shorter than three cells or with a blank
// text, author or category are rejected with a validation error.
func MapQuoteRow(row *Row) (*domain.FeedQuote, error) {
	if len(*row) < minQuoteCells {
		return nil, domain.NewValidationError("row", "needs at least text, author and category")
	}

	text, _ := row.cell(colText)
	author, _ := row.cell(colAuthor)
	category, _ := row.cell(colCategory)

	for _, f := range []struct{ value, name string }{
		{text, "text"},
		{author, "author"},
		{category, "category"},
	} {
		if err := required(f.value, f.name); err != nil {
			return nil, err
		}
	}

	language, _ := row.cell(colLanguage)
	if strings.TrimSpace(language) == "" {
		language = domain.DefaultLanguage
	}

	tags, _ := row.cell(colTags)

	return &domain.FeedQuote{
		Text:     text,
		Author:   author,
		Category: category,
		Language: language,
		Active:   parseActive(row, colActive),
		Tags:     tags,
	}, nil
}

// MapCategoryRow maps a category row. The name cell is required.
func MapCategoryRow(row *Row) (*domain.Category, error) {
	name, _ := row.cell(colCategoryName)
	if err := required(name, "name"); err != nil {
		return nil, err
	}

	emoji, ok := row.cell(colCategoryEmoji)
	if !ok || strings.TrimSpace(emoji) == "" {
		emoji = domain.DefaultCategoryEmoji
	}

	description, _ := row.cell(colCategoryDescription)
	color, _ := row.cell(colCategoryColor)

	return &domain.Category{
		Name:        name,
		Emoji:       emoji,
		Description: description,
		Color:       color,
		Active:      parseActive(row, colCategoryActive),
	}, nil
}

// parseActive reads an active flag cell. A missing cell means active;
// otherwise only true, 1, sí and si (any case) are active.
func parseActive(row *Row, col int) bool {
	value, ok := row.cell(col)
	if !ok {
		return true
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "sí", "si":
		return true
	default:
		return false
	}
}
