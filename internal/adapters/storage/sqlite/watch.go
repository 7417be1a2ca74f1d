package sqlite

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Watch streams snapshots of view. The first snapshot is read before Watch
// returns, so a failing query is reported to the caller instead of the stream.
func (s *Store) Watch(ctx context.Context, view ports.WatchView) (<-chan []domain.Quote, error) {
	filter, err := viewFilter(view)
	if err != nil {
		return nil, err
	}

	changed, unsubscribe := s.hub.subscribe()

	first, err := s.List(ctx, filter)
	if err != nil {
		unsubscribe()
		return nil, err
	}

	out := make(chan []domain.Quote)

	go func() {
		defer close(out)
		defer unsubscribe()

		snapshot := first

		for {
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}

			next, ok := s.nextSnapshot(ctx, view, filter, changed)
			if !ok {
				return
			}

			snapshot = next
		}
	}()

	return out, nil
}

// nextSnapshot waits for a change and re-reads the view. A failed refresh is
// logged and retried on the following change. It returns false once ctx is done.
func (s *Store) nextSnapshot(
	ctx context.Context,
	view ports.WatchView,
	filter ports.QuoteFilter,
	changed <-chan struct{},
) ([]domain.Quote, bool) {
	for {
		select {
		case <-changed:
		case <-ctx.Done():
			return nil, false
		}

		quotes, err := s.List(ctx, filter)
		if err == nil {
			return quotes, true
		}

		if ctx.Err() != nil {
			return nil, false
		}

		s.logger.WarnContext(ctx, "live view refresh failed",
			slog.String("view", string(view)),
			slog.Any("error", err),
		)
	}
}

func viewFilter(view ports.WatchView) (ports.QuoteFilter, error) {
	switch view {
	case ports.ViewAll:
		return ports.QuoteFilter{}, nil
	case ports.ViewFavorites:
		return ports.QuoteFilter{FavoritesOnly: true}, nil
	default:
		return ports.QuoteFilter{}, domain.NewValidationError("view", "unknown live view "+string(view))
	}
}
