// Package retry runs operations with exponential backoff and jitter on top of
// cenkalti/backoff, driven by config.RetryConfig.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

// Func is a retried operation. attempt starts at 1.
type Func func(ctx context.Context, attempt int) error

// Retryable decides whether an error is worth another attempt.
type Retryable func(error) bool

// Always retries every non-context error.
func Always(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Do runs fn until it succeeds, the error is not retryable, MaxAttempts is
// reached or ctx is done. It returns the last error from fn, or the context
// error if ctx ended first. MaxAttempts below 1 is treated as 1.
func Do(ctx context.Context, cfg config.RetryConfig, retryable Retryable, fn Func) error {
	if retryable == nil {
		retryable = Always
	}

	logger := logging.FromContext(ctx)
	attempt := 0

	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			attempt++

			err := fn(ctx, attempt)
			if err != nil && !retryable(err) {
				return struct{}{}, backoff.Permanent(err)
			}

			return struct{}{}, err
		},
		backoff.WithBackOff(newBackOff(cfg)),
		backoff.WithMaxTries(uint(max(cfg.MaxAttempts, 1))), //nolint:gosec // clamped to >= 1
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logger.Debug("retrying after failure",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Unwrap()
	}

	return err
}

// Backoff returns the wait after the given failed attempt (1-based):
// InitialInterval * Multiplier^(attempt-1), capped at MaxInterval, with
// symmetric jitter of JitterFactor.
func Backoff(cfg config.RetryConfig, attempt int) time.Duration {
	b := newBackOff(cfg)

	var wait time.Duration
	for range max(attempt, 1) {
		wait = b.NextBackOff()
	}

	return wait
}

// newBackOff maps cfg onto an exponential policy. Unset fields take the
// library defaults.
func newBackOff(cfg config.RetryConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.RandomizationFactor = cfg.JitterFactor

	if cfg.InitialInterval > 0 {
		b.InitialInterval = cfg.InitialInterval
	}

	if cfg.MaxInterval > 0 {
		b.MaxInterval = cfg.MaxInterval
	}

	if cfg.Multiplier > 0 {
		b.Multiplier = cfg.Multiplier
	}

	b.Reset()

	return b
}
