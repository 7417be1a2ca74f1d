//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/adapters/clients"
	"github.com/jsamuelsen/dailyquote/internal/adapters/clients/acl"
	httpserver "github.com/jsamuelsen/dailyquote/internal/adapters/http"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

const (
	testSheetID         = "integration-sheet"
	testQuotesRange     = "Quotes!A2:F"
	testCategoriesRange = "Categories!A2:E"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSheet is an in-process spreadsheet values API serving one sheet.
type fakeSheet struct {
	mu         sync.Mutex
	quotes     [][]string
	categories [][]string

	// failNext makes the next n requests answer 503.
	failNext atomic.Int32
	calls    atomic.Int32

	server *httptest.Server
}

func newFakeSheet(t *testing.T, quotes [][]string) *fakeSheet {
	t.Helper()

	sheet := &fakeSheet{
		quotes: quotes,
		categories: [][]string{
			{"wisdom", "🦉", "Timeless advice", "#334455", "true"},
			{"motivation", "", "Get going", "", "sí"},
			{"retired", "", "", "", "no"},
		},
	}
	sheet.server = httptest.NewServer(http.HandlerFunc(sheet.serveHTTP))
	t.Cleanup(sheet.server.Close)

	return sheet
}

func (s *fakeSheet) setQuotes(rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = rows
}

func (s *fakeSheet) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	if s.failNext.Load() > 0 {
		s.failNext.Add(-1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"backend error"}}`))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := "/" + testSheetID
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == prefix:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"properties": map[string]any{"title": "Integration Quotes"},
			"sheets": []map[string]any{
				{"properties": map[string]any{"title": "Quotes"}},
				{"properties": map[string]any{"title": "Categories"}},
			},
		})

	case strings.HasPrefix(r.URL.Path, prefix+"/values/"):
		rng := strings.TrimPrefix(r.URL.Path, prefix+"/values/")

		var values [][]string

		switch rng {
		case testQuotesRange:
			values = s.quotes
		case testCategoriesRange:
			values = s.categories
		default:
			values = [][]string{{"Label"}}
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"range":          rng,
			"majorDimension": "ROWS",
			"values":         values,
		})

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found."}}`))
	}
}

// sheetRows returns n active quote rows by distinct authors, plus one inactive row.
func sheetRows(n int) [][]string {
	rows := make([][]string, 0, n+1)
	for i := range n {
		rows = append(rows, []string{
			"row",
			"Quote number " + string(rune('A'+i)),
			"Author " + string(rune('A'+i)),
			"wisdom",
			"en",
			"true",
		})
	}

	return append(rows, []string{"row", "Hidden quote", "Nobody", "misc", "en", "false"})
}

// stack is the service wired the way the binary wires it, over a fake sheet.
type stack struct {
	sheet    *fakeSheet
	store    *sqlite.Store
	client   *clients.Client
	clock    *clock.Manual
	quotes   *app.QuoteService
	rotation *app.RotationService
	syncer   *app.SyncService
	router   *gin.Engine
}

type stackOptions struct {
	dbPath  string
	retry   config.RetryConfig
	circuit config.CircuitBreakerConfig
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts:     attempts,
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     20 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func newStack(t *testing.T, sheet *fakeSheet, opts stackOptions) *stack {
	t.Helper()

	logger := discardLogger()

	if opts.dbPath == "" {
		opts.dbPath = filepath.Join(t.TempDir(), "quotes.db")
	}

	if opts.circuit.MaxFailures == 0 {
		opts.circuit = config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 1,
		}
	}

	store, err := sqlite.Open(context.Background(), sqlite.Config{
		Path:        opts.dbPath,
		BusyTimeout: 5 * time.Second,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	client, err := clients.New(&clients.Config{
		BaseURL:     sheet.server.URL,
		ServiceName: "quote-feed",
		Timeout:     2 * time.Second,
		Circuit:     opts.circuit,
		AuthFunc:    acl.APIKeyAuth("integration-key"),
		Logger:      logger,
	})
	require.NoError(t, err)

	feed := acl.NewSheetsFeed(acl.SheetsFeedConfig{
		Client:          client,
		ServiceName:     "quote-feed",
		SourceID:        testSheetID,
		QuotesRange:     testQuotesRange,
		CategoriesRange: testCategoriesRange,
		Logger:          logger,
	})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))
	require.NoError(t, registry.RegisterOptional(feed))

	clk := clock.NewManual(time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC))

	s := &stack{
		sheet:  sheet,
		store:  store,
		client: client,
		clock:  clk,
		quotes: app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger}),
		rotation: app.NewRotationService(app.RotationServiceConfig{
			Store:  store,
			Clock:  clk,
			Logger: logger,
		}),
		syncer: app.NewSyncService(app.SyncServiceConfig{
			Store:  store,
			Feed:   feed,
			Clock:  clk,
			Retry:  opts.retry,
			Logger: logger,
		}),
	}

	s.router = gin.New()
	httpserver.SetupRouter(s.router, httpserver.RouterConfig{
		Logger:             logger,
		AppConfig:          &config.AppConfig{Name: "dailyquote", Version: "test", Environment: "integration"},
		HealthHandler:      handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		QuoteHandler:       handlers.NewQuoteHandler(s.quotes),
		TodayHandler:       handlers.NewTodayHandler(s.rotation),
		SyncHandler:        handlers.NewSyncHandler(s.syncer),
		MaintenanceHandler: handlers.NewMaintenanceHandler(s.quotes),
		StreamHandler:      handlers.NewStreamHandler(s.quotes, 50*time.Millisecond),
		Timeout:            5 * time.Second,
	})

	return s
}

func (s *stack) count(t *testing.T) int {
	t.Helper()

	n, err := s.store.Count(context.Background(), ports.QuoteFilter{})
	require.NoError(t, err)

	return n
}
