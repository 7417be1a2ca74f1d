package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/retry"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Sync result messages.
const (
	MsgAlreadyAvailable   = "quotes already available"
	MsgSyncCompleted      = "sync completed"
	MsgNoValidQuotes      = "no valid quotes found"
	MsgConnectivityError  = "connectivity error with quote feed"
	MsgDefaultsLoaded     = "default quotes initialized"
	MsgAlreadyInitialized = "quotes already initialized"
)

var (
	errConnectivity  = errors.New("feed unreachable")
	errNoValidQuotes = errors.New(MsgNoValidQuotes)
)

// SyncServiceConfig contains the dependencies of SyncService.
type SyncServiceConfig struct {
	Store ports.QuoteStore
	Feed  ports.QuoteFeed

	// Clock stamps the last successful sync. Defaults to the local zone.
	Clock ports.Clock

	// Retry governs the ping and fetch step. The zero value makes one attempt.
	Retry config.RetryConfig

	Logger *slog.Logger
}

// SyncService reconciles the local store with the remote feed and
// guarantees the store is never left empty.
type SyncService struct {
	store  ports.QuoteStore
	feed   ports.QuoteFeed
	clock  ports.Clock
	retry  config.RetryConfig
	logger *slog.Logger
	exec   *Executor

	runs     metric.Int64Counter
	imported metric.Int64Counter
}

// NewSyncService creates a sync service. It panics if Store or Feed is nil.
func NewSyncService(cfg SyncServiceConfig) *SyncService {
	if cfg.Store == nil {
		panic("app: SyncServiceConfig.Store is required")
	}

	if cfg.Feed == nil {
		panic("app: SyncServiceConfig.Feed is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.Local()
	}

	meter := telemetry.Meter("sync")

	// Instrument creation only fails on invalid names.
	runs, _ := meter.Int64Counter("dailyquote.sync.runs",
		metric.WithDescription("Sync runs by outcome"),
	)
	imported, _ := meter.Int64Counter("dailyquote.sync.quotes_imported",
		metric.WithDescription("Quotes written by successful syncs"),
	)

	return &SyncService{
		store:    cfg.Store,
		feed:     cfg.Feed,
		clock:    cfg.Clock,
		retry:    cfg.Retry,
		logger:   cfg.Logger,
		exec:     NewExecutor(cfg.Logger),
		runs:     runs,
		imported: imported,
	}
}

// syncRun carries one SyncQuotes call through the executor.
type syncRun struct {
	ID       string
	Force    bool
	existing int
}

// SyncQuotes pulls the feed into the store.
//
// Without force it is a no-op when the store already holds quotes. With force
// the store is replaced, but only after the feed has produced at least one
// active quote; a failed or empty fetch never touches the store.
func (s *SyncService) SyncQuotes(ctx context.Context, force bool) domain.SyncResult {
	run := &syncRun{ID: uuid.NewString(), Force: force}
	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("sync_id", run.ID), slog.Bool("force", force))
	ctx = logging.WithContext(ctx, logger)

	op := Operation[*syncRun, []domain.FeedQuote, []domain.Quote, domain.SyncResult]{
		Name:         "sync_quotes",
		Validate:     s.validateSync,
		ShortCircuit: s.alreadyAvailable,
		Perform:      s.fetchFeed,
		Verify:       verifyFeed,
		Archive:      s.replaceQuotes,
		Respond: func(_ context.Context, _ *syncRun, quotes []domain.Quote) (domain.SyncResult, error) {
			return domain.NewSyncSuccess(MsgSyncCompleted, len(quotes)), nil
		},
	}

	result, err := Execute(ctx, s.exec, op, run)
	if err != nil {
		result = domain.NewSyncError(syncErrorMessage(err))
		logger.WarnContext(ctx, "sync failed", slog.Any("error", err))
	} else {
		logger.InfoContext(ctx, "sync finished",
			slog.String("message", result.Message),
			slog.Int("quotes", result.QuotesCount),
		)
	}

	s.record(ctx, result)

	return result
}

// ForceSync replaces the store contents with the feed.
func (s *SyncService) ForceSync(ctx context.Context) domain.SyncResult {
	return s.SyncQuotes(ctx, true)
}

func (s *SyncService) validateSync(ctx context.Context, run *syncRun) error {
	if run.Force {
		return nil
	}

	count, err := s.store.Count(ctx, ports.QuoteFilter{})
	if err != nil {
		return fmt.Errorf("counting quotes: %w", err)
	}

	if count > 0 {
		run.existing = count
		return errShortCircuit
	}

	return nil
}

func (s *SyncService) alreadyAvailable(_ context.Context, run *syncRun) (domain.SyncResult, error) {
	return domain.NewSyncSuccess(MsgAlreadyAvailable, run.existing), nil
}

// fetchFeed pings then fetches, retrying the pair on retryable feed failures.
func (s *SyncService) fetchFeed(ctx context.Context, _ *syncRun) ([]domain.FeedQuote, error) {
	var rows []domain.FeedQuote

	err := retry.Do(ctx, s.retry, domain.IsRetryable, func(ctx context.Context, _ int) error {
		if err := s.feed.Ping(ctx); err != nil {
			return fmt.Errorf("%w: %w", errConnectivity, err)
		}

		fetched, err := s.feed.FetchQuotes(ctx)
		if err != nil {
			return err
		}

		rows = fetched

		return nil
	})

	return rows, err
}

// verifyFeed keeps active rows and converts them to fresh, unshown quotes.
func verifyFeed(_ context.Context, _ *syncRun, rows []domain.FeedQuote) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(rows))

	for _, row := range rows {
		if !row.Active {
			continue
		}

		q := row.ToQuote()
		if !q.Valid() {
			continue
		}

		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return nil, errNoValidQuotes
	}

	return quotes, nil
}

func (s *SyncService) replaceQuotes(ctx context.Context, run *syncRun, quotes []domain.Quote) error {
	if run.Force {
		removed, err := s.store.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clearing quotes: %w", err)
		}

		s.logger.DebugContext(ctx, "cleared quotes for forced sync", slog.Int("removed", removed))
	}

	if err := s.store.BulkInsert(ctx, quotes); err != nil {
		return fmt.Errorf("inserting quotes: %w", err)
	}

	if err := s.store.MarkSynced(ctx, s.clock.Now()); err != nil {
		s.logger.WarnContext(ctx, "failed to record sync time", slog.Any("error", err))
	}

	return nil
}

func (s *SyncService) record(ctx context.Context, result domain.SyncResult) {
	outcome := string(result.Kind)
	if result.OK() && result.Message == MsgAlreadyAvailable {
		outcome = "skipped"
	}

	s.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	if result.OK() && result.Message == MsgSyncCompleted {
		s.imported.Add(ctx, int64(result.QuotesCount))
	}
}

// syncErrorMessage turns a failed run into the message callers show.
func syncErrorMessage(err error) string {
	switch {
	case errors.Is(err, errConnectivity):
		return MsgConnectivityError
	case errors.Is(err, errNoValidQuotes):
		return MsgNoValidQuotes
	}

	var execErr *ExecutionError
	if errors.As(err, &execErr) && execErr.Cause != nil {
		return "sync failed: " + execErr.Cause.Error()
	}

	return "sync failed: " + err.Error()
}

// InitializeQuotes is the startup entry point. It syncs when the store is
// empty or force is set, and falls back to the built-in defaults when the
// sync fails and the store is still empty. Panics and store errors on this
// path end in the same fallback.
func (s *SyncService) InitializeQuotes(ctx context.Context, force bool) (result domain.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "quote initialization panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			result = s.fallbackToDefaults(ctx)
		}
	}()

	count, err := s.store.Count(ctx, ports.QuoteFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count quotes", slog.Any("error", err))
		return s.fallbackToDefaults(ctx)
	}

	if count > 0 && !force {
		return domain.NewSyncSuccess(MsgAlreadyInitialized, count)
	}

	synced := s.SyncQuotes(ctx, force)
	if synced.OK() {
		return synced
	}

	s.logger.WarnContext(ctx, "sync failed during initialization",
		slog.String("reason", synced.Message),
	)

	return s.fallbackToDefaults(ctx)
}

// fallbackToDefaults seeds the built-in quotes if the store is empty.
// A non-empty store is kept as is.
func (s *SyncService) fallbackToDefaults(ctx context.Context) domain.SyncResult {
	count, err := s.store.Count(ctx, ports.QuoteFilter{})
	if err == nil && count > 0 {
		return domain.NewSyncSuccess(MsgAlreadyInitialized, count)
	}

	defaults := domain.DefaultQuotes()
	if err := s.store.BulkInsert(ctx, defaults); err != nil {
		s.logger.ErrorContext(ctx, "failed to seed default quotes", slog.Any("error", err))
		return domain.NewSyncErrorf("local store unavailable: %v", err)
	}

	s.logger.InfoContext(ctx, "seeded default quotes", slog.Int("quotes", len(defaults)))

	return domain.NewSyncSuccess(MsgDefaultsLoaded, len(defaults))
}

// CheckConnectivity reports whether the feed answers a ping.
func (s *SyncService) CheckConnectivity(ctx context.Context) bool {
	if err := s.feed.Ping(ctx); err != nil {
		s.logger.DebugContext(ctx, "feed ping failed", slog.Any("error", err))
		return false
	}

	return true
}

// SpreadsheetInfo returns the feed metadata, or nil when unavailable.
func (s *SyncService) SpreadsheetInfo(ctx context.Context) *domain.SpreadsheetInfo {
	info, err := s.feed.FetchMetadata(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "feed metadata unavailable", slog.Any("error", err))
		return nil
	}

	return info
}

// SyncCategories returns the active categories published by the feed.
func (s *SyncService) SyncCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.feed.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Active {
			active = append(active, c)
		}
	}

	return active, nil
}

// SyncStatus describes the feed and the local cache. Circuit is set when the
// feed reports a circuit breaker.
type SyncStatus struct {
	Connected   bool                    `json:"connected"`
	Circuit     *domain.CircuitStatus   `json:"circuit,omitempty"`
	Spreadsheet *domain.SpreadsheetInfo `json:"spreadsheet,omitempty"`
	LastSyncAt  *time.Time              `json:"lastSyncAt,omitempty"`
	QuotesCount int                     `json:"quotesCount"`
}

// Status probes the feed and reads the cache state concurrently, then reads
// the feed's circuit breaker when it has one.
// Each part is best-effort; a failed probe leaves its field at the zero value.
func (s *SyncService) Status(ctx context.Context) SyncStatus {
	var status SyncStatus

	errs := runEach(ctx,
		func(ctx context.Context) error {
			status.Connected = s.CheckConnectivity(ctx)
			return nil
		},
		func(ctx context.Context) (err error) {
			status.Spreadsheet, err = s.feed.FetchMetadata(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			status.LastSyncAt, err = s.store.LastSyncAt(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			status.QuotesCount, err = s.store.Count(ctx, ports.QuoteFilter{})
			return err
		},
	)

	for i, err := range errs {
		if err != nil {
			s.logger.DebugContext(ctx, "sync status probe failed", slog.Int("probe", i), slog.Any("error", err))
		}
	}

	// Read after the ping so the breaker reflects it.
	if reporter, ok := s.feed.(ports.CircuitReporter); ok {
		circuit := reporter.CircuitStatus()
		status.Circuit = &circuit
	}

	return status
}
