package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// stubFeed serves a fixed set of rows, or fails every call when down.
type stubFeed struct {
	rows []domain.FeedQuote
	down bool
}

func (f *stubFeed) err() error {
	if f.down {
		return domain.NewHTTPUnavailableError("quote-feed", http.StatusServiceUnavailable, "feed down")
	}

	return nil
}

func (f *stubFeed) Ping(context.Context) error { return f.err() }

func (f *stubFeed) FetchQuotes(context.Context) ([]domain.FeedQuote, error) {
	if err := f.err(); err != nil {
		return nil, err
	}

	return f.rows, nil
}

func (f *stubFeed) FetchCategories(context.Context) ([]domain.Category, error) {
	return nil, f.err()
}

func (f *stubFeed) FetchMetadata(context.Context) (*domain.SpreadsheetInfo, error) {
	if err := f.err(); err != nil {
		return nil, err
	}

	return &domain.SpreadsheetInfo{Title: "Quotes"}, nil
}

// scenarioState holds state shared across step definitions within a scenario.
type scenarioState struct {
	store *sqlite.Store
	feed  *stubFeed
	clock *clock.Manual

	served []domain.Quote
	result domain.SyncResult
}

func initializeScenario(sc *godog.ScenarioContext) {
	st := &scenarioState{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		store, err := sqlite.Open(ctx, sqlite.Config{Path: sqlite.MemoryPath}, discardLogger())
		if err != nil {
			return ctx, err
		}

		*st = scenarioState{
			store: store,
			feed:  &stubFeed{},
			clock: clock.NewManual(time.Now().UTC()),
		}

		return ctx, nil
	})

	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if st.store != nil {
			_ = st.store.Close()
		}

		return ctx, err
	})

	sc.Step(`^the store is empty$`, func() error { return nil })
	sc.Step(`^the store holds (\d+) quotes$`, st.storeHolds)
	sc.Step(`^the store holds (\d+) quotes already shown$`, st.storeHoldsShown)
	sc.Step(`^today is "([^"]*)"$`, st.todayIs)
	sc.Step(`^the feed publishes (\d+) (active|inactive) quotes$`, st.feedPublishes)
	sc.Step(`^the feed is unreachable$`, st.feedUnreachable)

	sc.Step(`^I ask for the quote of the day(?: again)?$`, st.askQuoteOfTheDay)
	sc.Step(`^I ask for the quote of the day on (\d+) consecutive days$`, st.askOnConsecutiveDays)
	sc.Step(`^quotes are synced( with force)?$`, st.syncQuotes)
	sc.Step(`^quotes are initialized( with force)?$`, st.initializeQuotes)

	sc.Step(`^both answers are the same quote$`, st.bothAnswersSame)
	sc.Step(`^exactly (\d+) quotes? (?:is|are) marked as shown$`, st.shownCount)
	sc.Step(`^(\d+) different quotes were served$`, st.differentServed)
	sc.Step(`^the quote of the day was shown on "([^"]*)"$`, st.lastShownOn)
	sc.Step(`^the built-in quote is served$`, st.builtInServed)
	sc.Step(`^the store contains (\d+) quotes$`, st.storeContains)
	sc.Step(`^the sync succeeds with message "([^"]*)"$`, st.syncSucceeds)
	sc.Step(`^the sync fails with message "([^"]*)"$`, st.syncFails)
}

func numberedQuotes(n int, prefix string) []domain.Quote {
	quotes := make([]domain.Quote, 0, n)

	for i := range n {
		quotes = append(quotes, newQuote(fmt.Sprintf("%s quote %d", prefix, i+1), "Author", "General"))
	}

	return quotes
}

func (st *scenarioState) storeHolds(n int) error {
	return st.store.BulkInsert(context.Background(), numberedQuotes(n, "stored"))
}

func (st *scenarioState) storeHoldsShown(n int) error {
	quotes := numberedQuotes(n, "shown")
	for i := range quotes {
		quotes[i].DateShown = domain.StringPtr(fmt.Sprintf("2020-01-%02d", i+1))
	}

	return st.store.BulkInsert(context.Background(), quotes)
}

func (st *scenarioState) todayIs(date string) error {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return err
	}

	st.clock.Set(day.Add(12 * time.Hour))

	return nil
}

func (st *scenarioState) feedPublishes(n int, state string) error {
	for i := range n {
		st.feed.rows = append(st.feed.rows,
			feedQuote(fmt.Sprintf("%s feed quote %d", state, i+1), "Feed Author", "Feed", state == "active"))
	}

	return nil
}

func (st *scenarioState) feedUnreachable() error {
	st.feed.down = true
	return nil
}

func (st *scenarioState) rotation() *RotationService {
	return NewRotationService(RotationServiceConfig{
		Store:  st.store,
		Clock:  st.clock,
		Logger: discardLogger(),
	})
}

func (st *scenarioState) syncService() *SyncService {
	return NewSyncService(SyncServiceConfig{
		Store:  st.store,
		Feed:   st.feed,
		Clock:  st.clock,
		Logger: discardLogger(),
	})
}

func (st *scenarioState) askQuoteOfTheDay() error {
	q, err := st.rotation().GetOrCreateTodayQuote(context.Background())
	if err != nil {
		return err
	}

	st.served = append(st.served, q)

	return nil
}

func (st *scenarioState) askOnConsecutiveDays(days int) error {
	for range days {
		if err := st.askQuoteOfTheDay(); err != nil {
			return err
		}

		st.clock.Advance(24 * time.Hour)
	}

	return nil
}

func (st *scenarioState) syncQuotes(force string) error {
	st.result = st.syncService().SyncQuotes(context.Background(), force != "")
	return nil
}

func (st *scenarioState) initializeQuotes(force string) error {
	st.result = st.syncService().InitializeQuotes(context.Background(), force != "")
	return nil
}

func (st *scenarioState) bothAnswersSame() error {
	if len(st.served) != 2 {
		return fmt.Errorf("expected 2 answers, got %d", len(st.served))
	}

	if st.served[0].ID != st.served[1].ID || !st.served[1].ShownOn(*st.served[0].DateShown) {
		return fmt.Errorf("answers differ: %q and %q", st.served[0].Text, st.served[1].Text)
	}

	return nil
}

func (st *scenarioState) shownCount(expected int) error {
	n, err := st.store.Count(context.Background(), ports.QuoteFilter{Shown: ports.ShownOnly})
	if err != nil {
		return err
	}

	if n != expected {
		return fmt.Errorf("expected %d shown quotes, got %d", expected, n)
	}

	return nil
}

func (st *scenarioState) differentServed(expected int) error {
	seen := make(map[int64]bool, len(st.served))
	for _, q := range st.served {
		seen[q.ID] = true
	}

	if len(seen) != expected {
		return fmt.Errorf("expected %d different quotes, got %d", expected, len(seen))
	}

	return nil
}

func (st *scenarioState) lastShownOn(date string) error {
	if len(st.served) == 0 {
		return errors.New("no quote was served")
	}

	last := st.served[len(st.served)-1]
	if !last.ShownOn(date) {
		return fmt.Errorf("quote %d was not shown on %s", last.ID, date)
	}

	return nil
}

func (st *scenarioState) builtInServed() error {
	if len(st.served) == 0 {
		return errors.New("no quote was served")
	}

	if st.served[0].ID != 0 || st.served[0].Text != domain.DefaultQuotes()[0].Text {
		return fmt.Errorf("expected the built-in quote, got %q", st.served[0].Text)
	}

	return nil
}

func (st *scenarioState) storeContains(expected int) error {
	n, err := st.store.Count(context.Background(), ports.QuoteFilter{})
	if err != nil {
		return err
	}

	if n != expected {
		return fmt.Errorf("expected %d stored quotes, got %d", expected, n)
	}

	return nil
}

func (st *scenarioState) syncSucceeds(message string) error {
	if !st.result.OK() || st.result.Message != message {
		return fmt.Errorf("expected success %q, got %s", message, st.result)
	}

	return nil
}

func (st *scenarioState) syncFails(message string) error {
	if st.result.OK() || st.result.Message != message {
		return fmt.Errorf("expected error %q, got %s", message, st.result)
	}

	return nil
}
