package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// RotationServiceConfig contains the dependencies of RotationService.
type RotationServiceConfig struct {
	Store ports.QuoteStore

	// Clock decides what "today" is. Defaults to the local zone.
	Clock ports.Clock

	Logger *slog.Logger
}

// RotationService picks the quote of the day.
//
// Every quote is shown once before any quote repeats. When all quotes have
// been shown the markers are cleared and the cycle starts over.
type RotationService struct {
	store  ports.QuoteStore
	clock  ports.Clock
	logger *slog.Logger

	// mu serializes the find-or-assign sequence so concurrent callers agree
	// on a single quote per day.
	mu sync.Mutex
}

// NewRotationService creates a rotation service. It panics if Store is nil.
func NewRotationService(cfg RotationServiceConfig) *RotationService {
	if cfg.Store == nil {
		panic("app: RotationServiceConfig.Store is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.Local()
	}

	return &RotationService{
		store:  cfg.Store,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}
}

// Today returns the current day in the rotation's zone.
func (s *RotationService) Today() string {
	return domain.DayOf(s.clock.Now())
}

// GetOrCreateTodayQuote returns today's quote, assigning one if needed.
//
// Repeated calls on the same day return the same quote. If the store is
// empty even after a reset, the first built-in quote is returned without
// being persisted.
func (s *RotationService) GetOrCreateTodayQuote(ctx context.Context) (domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.Today()
	logger := s.logger.With(slog.String("date", today))

	current, err := s.store.FindByDateShown(ctx, today)
	if err == nil {
		return current, nil
	}

	if !domain.IsNotFound(err) {
		return domain.Quote{}, fmt.Errorf("finding quote for %s: %w", today, err)
	}

	picked, ok, err := s.pickUnshown(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if !ok {
		reset, err := s.store.ResetAllDatesShown(ctx)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("resetting rotation: %w", err)
		}

		logger.InfoContext(ctx, "every quote has been shown, starting a new cycle", slog.Int("reset", reset))

		picked, ok, err = s.pickUnshown(ctx)
		if err != nil {
			return domain.Quote{}, err
		}
	}

	if !ok {
		logger.WarnContext(ctx, "no quotes stored, serving a built-in quote")
		return domain.DefaultQuotes()[0], nil
	}

	picked.DateShown = domain.StringPtr(today)

	if err := s.store.Update(ctx, picked); err != nil {
		return domain.Quote{}, fmt.Errorf("assigning quote of the day: %w", err)
	}

	logger.DebugContext(ctx, "assigned quote of the day", slog.Int64("quote_id", picked.ID))

	return picked, nil
}

func (s *RotationService) pickUnshown(ctx context.Context) (domain.Quote, bool, error) {
	quotes, err := s.store.Random(ctx, ports.RandomFilter{Shown: ports.UnshownOnly, Limit: 1})
	if err != nil {
		return domain.Quote{}, false, fmt.Errorf("picking unshown quote: %w", err)
	}

	if len(quotes) == 0 {
		return domain.Quote{}, false, nil
	}

	return quotes[0], true, nil
}

// ResetTodayQuote clears today's marker so the next call picks a new quote.
// The cleared quote becomes unshown again.
func (s *RotationService) ResetTodayQuote(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.store.ClearDateShown(ctx, s.Today())
	if err != nil {
		return 0, fmt.Errorf("clearing today's quote: %w", err)
	}

	return n, nil
}

// ResetAllShown clears every shown marker, restarting the cycle.
func (s *RotationService) ResetAllShown(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.store.ResetAllDatesShown(ctx)
	if err != nil {
		return 0, fmt.Errorf("resetting shown quotes: %w", err)
	}

	return n, nil
}

// RecentlyShown returns up to limit past quotes of the day, newest first.
func (s *RotationService) RecentlyShown(ctx context.Context, limit int) ([]domain.Quote, error) {
	quotes, err := s.store.RecentlyShown(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing shown quotes: %w", err)
	}

	return quotes, nil
}
