package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page sizes for quote listings.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// OrderNewestFirst lists quotes by descending id. It is the only order.
const OrderNewestFirst = "id_desc"

var (
	// ErrInvalidCursor rejects a cursor that does not decode or was minted
	// for another order.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor means the first page was asked for.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest is the cursor and page size of a listing request.
type PaginationRequest struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit clamps Limit to 1..MaxLimit, with DefaultLimit when unset.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// BeforeID is the id the requested page starts below, or ErrNoCursor for the
// first page.
func (p *PaginationRequest) BeforeID() (int64, error) {
	c, err := DecodeCursor(p.Cursor)
	switch {
	case err != nil:
		return 0, err
	case c.Order != OrderNewestFirst, c.BeforeID <= 0:
		return 0, ErrInvalidCursor
	default:
		return c.BeforeID, nil
	}
}

// PaginatedResponse is one page of a listing.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPaginatedResponse builds a page from up to limit+1 items; the extra one
// only signals that another page exists. next mints the cursor from the last
// item kept.
func NewPaginatedResponse[T any](items []T, limit int, next func(T) *Cursor) *PaginatedResponse[T] {
	page := &PaginatedResponse[T]{Items: items}

	if len(items) <= limit {
		return page
	}

	page.Items = items[:limit]
	page.HasMore = true

	if next != nil && limit > 0 {
		page.NextCursor = EncodeCursor(next(page.Items[limit-1]))
	}

	return page
}

// Cursor is the decoded form of NextCursor.
type Cursor struct {
	Order    string `json:"o"`
	BeforeID int64  `json:"b"`
}

// QuoteCursor continues a newest-first listing after q.
func QuoteCursor(q QuoteResponse) *Cursor {
	return &Cursor{Order: OrderNewestFirst, BeforeID: q.ID}
}

// EncodeCursor returns c as URL-safe base64 JSON, or "" for nil.
func EncodeCursor(c *Cursor) string {
	if c == nil {
		return ""
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var c Cursor
	if json.Unmarshal(raw, &c) != nil {
		return nil, ErrInvalidCursor
	}

	return &c, nil
}
