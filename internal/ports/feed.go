package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// QuoteFeed reads the remote spreadsheet that publishes quotes.
// Network and HTTP failures are returned as domain.ErrUnavailable.
// Implementations do not retry; retry policy belongs to the caller.
type QuoteFeed interface {
	// Ping probes the feed with a minimal range.
	Ping(ctx context.Context) error

	// FetchQuotes returns every row of the quotes range that maps to a quote,
	// active or not. Malformed rows are dropped.
	FetchQuotes(ctx context.Context) ([]domain.FeedQuote, error)

	// FetchCategories returns the mapped rows of the categories range.
	FetchCategories(ctx context.Context) ([]domain.Category, error)

	// FetchMetadata returns the spreadsheet title and URL.
	FetchMetadata(ctx context.Context) (*domain.SpreadsheetInfo, error)
}

// CircuitReporter is implemented by feeds guarded by a circuit breaker.
type CircuitReporter interface {
	CircuitStatus() domain.CircuitStatus
}

// Clock supplies the current time in the zone used for quote-of-the-day dates.
type Clock interface {
	Now() time.Time
}
