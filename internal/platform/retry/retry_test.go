package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/platform/config"
)

var errBoom = errors.New("boom")

func fastConfig(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
		JitterFactor:    0,
	}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastConfig(3), nil, func(context.Context, int) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	var seen []int

	err := Do(context.Background(), fastConfig(3), nil, func(_ context.Context, attempt int) error {
		seen = append(seen, attempt)
		if attempt < 3 {
			return errBoom
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestDo_ReturnsLastErrorWhenExhausted(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastConfig(2), nil, func(context.Context, int) error {
		calls++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, calls)
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	never := func(error) bool { return false }

	err := Do(context.Background(), fastConfig(5), never, func(context.Context, int) error {
		calls++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0

	err := Do(context.Background(), fastConfig(0), nil, func(context.Context, int) error {
		calls++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCanceledDuringBackoff(t *testing.T) {
	cfg := fastConfig(3)
	cfg.InitialInterval = time.Hour
	cfg.MaxInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())

	err := Do(ctx, cfg, nil, func(context.Context, int) error {
		cancel()
		return errBoom
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestAlways(t *testing.T) {
	assert.True(t, Always(errBoom))
	assert.False(t, Always(context.Canceled))
	assert.False(t, Always(context.DeadlineExceeded))
}

func TestBackoff(t *testing.T) {
	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.25,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{5, time.Second},
	}

	for _, tt := range tests {
		got := Backoff(cfg, tt.attempt)
		low := time.Duration(float64(tt.base) * 0.75)
		high := time.Duration(float64(tt.base) * 1.25)

		assert.GreaterOrEqual(t, got, low, "attempt %d", tt.attempt)
		assert.LessOrEqual(t, got, high, "attempt %d", tt.attempt)
	}
}

func TestBackoff_WithoutJitterIsExact(t *testing.T) {
	cfg := fastConfig(0)

	assert.Equal(t, time.Millisecond, Backoff(cfg, 1))
	assert.Equal(t, 2*time.Millisecond, Backoff(cfg, 2))
	assert.Equal(t, 4*time.Millisecond, Backoff(cfg, 3))
	assert.Equal(t, 5*time.Millisecond, Backoff(cfg, 4), "capped at MaxInterval")
}

func TestDo_PassesAttemptNumbersAfterNonRetryable(t *testing.T) {
	var seen []int
	onlyFirst := func(error) bool { return len(seen) < 2 }

	err := Do(context.Background(), fastConfig(5), onlyFirst, func(_ context.Context, attempt int) error {
		seen = append(seen, attempt)
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 2}, seen)
}
