package acl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/dailyquote/internal/adapters/clients"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

const (
	// pingRange is the smallest range that proves the sheet is readable.
	pingRange = "A1:A1"

	// metadataFields limits the metadata response to what SpreadsheetInfo needs.
	metadataFields = "properties.title,sheets.properties"

	// spreadsheetURLFormat is the browser URL of a spreadsheet.
	spreadsheetURLFormat = "https://docs.google.com/spreadsheets/d/%s"
)

var (
	_ ports.QuoteFeed       = (*SheetsFeed)(nil)
	_ ports.HealthChecker   = (*SheetsFeed)(nil)
	_ ports.CircuitReporter = (*SheetsFeed)(nil)
)

// SheetsFeedConfig contains configuration for the spreadsheet feed.
type SheetsFeedConfig struct {
	// Client is the HTTP client to use. Its BaseURL points at the spreadsheets
	// collection and its AuthFunc adds the API key (see APIKeyAuth).
	Client *clients.Client

	// ServiceName identifies the feed in errors and health checks.
	ServiceName string

	SourceID        string
	QuotesRange     string
	CategoriesRange string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// SheetsFeed reads quotes and categories from a spreadsheet values API.
type SheetsFeed struct {
	reader sheetReader

	sourceID        string
	quotesRange     string
	categoriesRange string
	logger          *slog.Logger
}

// NewSheetsFeed creates the spreadsheet feed adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewSheetsFeed(cfg SheetsFeedConfig) *SheetsFeed {
	if cfg.Client == nil {
		panic("SheetsFeed: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.ServiceName
	if name == "" {
		name = "quote-feed"
	}

	return &SheetsFeed{
		reader:          sheetReader{client: cfg.Client, service: name},
		sourceID:        cfg.SourceID,
		quotesRange:     cfg.QuotesRange,
		categoriesRange: cfg.CategoriesRange,
		logger:          logger.With(slog.String("component", "acl.SheetsFeed")),
	}
}

// APIKeyAuth returns a clients.Config.AuthFunc that adds the key query
// parameter. An empty key adds nothing (public sheets).
func APIKeyAuth(key string) func(*http.Request) {
	return func(r *http.Request) {
		if key == "" {
			return
		}

		q := r.URL.Query()
		q.Set("key", key)
		r.URL.RawQuery = q.Encode()
	}
}

// valueRange is the values API response for one range.
type valueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// spreadsheetResponse is the subset of the spreadsheet resource requested
// through metadataFields.
type spreadsheetResponse struct {
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// Ping probes the feed with a single-cell range.
func (f *SheetsFeed) Ping(ctx context.Context) error {
	_, err := f.FetchRows(ctx, pingRange)
	return err
}

// FetchRows returns the raw rows of rng, unvalidated.
func (f *SheetsFeed) FetchRows(ctx context.Context, rng string) ([]Row, error) {
	path := "/" + url.PathEscape(f.sourceID) + "/values/" + url.PathEscape(rng)
	query := url.Values{
		"majorDimension":    {"ROWS"},
		"valueRenderOption": {"FORMATTED_VALUE"},
	}

	f.logger.Log(ctx, logging.LevelTrace, "fetching range", slog.String("range", rng))

	var vr valueRange
	if err := f.reader.getJSON(ctx, path, query, "fetch range "+rng, &vr); err != nil {
		return nil, err
	}

	rows := make([]Row, len(vr.Values))
	for i, values := range vr.Values {
		rows[i] = Row(values)
	}

	f.logger.Log(ctx, logging.LevelTrace, "range fetched",
		slog.String("range", vr.Range),
		slog.Int("rows", len(rows)),
	)

	return rows, nil
}

// FetchQuotes returns every mappable row of the quotes range, active or not.
func (f *SheetsFeed) FetchQuotes(ctx context.Context) ([]domain.FeedQuote, error) {
	rows, err := f.FetchRows(ctx, f.quotesRange)
	if err != nil {
		return nil, err
	}

	quotes, dropped := mapRows(rows, MapQuoteRow)
	if dropped > 0 {
		logging.FromContext(ctx).DebugContext(ctx, "dropped malformed quote rows",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(quotes)),
		)
	}

	return quotes, nil
}

// FetchCategories returns every mappable row of the categories range.
func (f *SheetsFeed) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := f.FetchRows(ctx, f.categoriesRange)
	if err != nil {
		return nil, err
	}

	categories, _ := mapRows(rows, MapCategoryRow)

	return categories, nil
}

// FetchMetadata returns the spreadsheet title, URL and sheet names.
func (f *SheetsFeed) FetchMetadata(ctx context.Context) (*domain.SpreadsheetInfo, error) {
	var resp spreadsheetResponse
	if err := f.reader.getJSON(ctx, "/"+url.PathEscape(f.sourceID), url.Values{"fields": {metadataFields}}, "fetch metadata", &resp); err != nil {
		return nil, err
	}

	info := &domain.SpreadsheetInfo{
		Title: resp.Properties.Title,
		URL:   fmt.Sprintf(spreadsheetURLFormat, f.sourceID),
	}

	for _, sheet := range resp.Sheets {
		info.Sheets = append(info.Sheets, sheet.Properties.Title)
	}

	return info, nil
}

// Name is the feed's service name, used for its health check.
func (f *SheetsFeed) Name() string {
	return f.reader.service
}

// Check pings the feed.
// Implements ports.HealthChecker.
func (f *SheetsFeed) Check(ctx context.Context) error {
	return f.Ping(ctx)
}

// CircuitStatus reports the breaker of the underlying client.
// Implements ports.CircuitReporter.
func (f *SheetsFeed) CircuitStatus() domain.CircuitStatus {
	snap := f.reader.client.Circuit()

	return domain.CircuitStatus{
		State:             snap.State.String(),
		Failures:          snap.Failures,
		RetryAfterSeconds: int(math.Ceil(snap.RetryIn.Seconds())),
	}
}
