package ports

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

// slowChecker succeeds after a delay unless ctx ends first.
type slowChecker struct{ name string }

func (s slowChecker) Name() string { return s.name }

func (s slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(stubChecker{name: "quote-store"}))
	require.NoError(t, registry.RegisterOptional(stubChecker{name: "quote-feed"}))

	err := registry.Register(stubChecker{name: "quote-store"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-store")

	require.ErrorIs(t, registry.RegisterOptional(stubChecker{name: "quote-feed"}), ErrDuplicateChecker)

	assert.Equal(t, []string{"quote-store", "quote-feed"}, registry.Names())
}

func TestHealthRegistry_CheckAll(t *testing.T) {
	down := errors.New("HTTP 503")

	tests := []struct {
		name     string
		required []HealthChecker
		optional []HealthChecker
		want     HealthStatus
		failing  []string
	}{
		{
			name: "nothing registered",
			want: HealthStatusHealthy,
		},
		{
			name:     "store and feed up",
			required: []HealthChecker{stubChecker{name: "quote-store"}},
			optional: []HealthChecker{stubChecker{name: "quote-feed"}},
			want:     HealthStatusHealthy,
		},
		{
			name:     "feed down serves the cache",
			required: []HealthChecker{stubChecker{name: "quote-store"}},
			optional: []HealthChecker{stubChecker{name: "quote-feed", err: down}},
			want:     HealthStatusDegraded,
			failing:  []string{"quote-feed"},
		},
		{
			name:     "store down",
			required: []HealthChecker{stubChecker{name: "quote-store", err: errors.New("disk I/O error")}},
			optional: []HealthChecker{stubChecker{name: "quote-feed"}},
			want:     HealthStatusUnhealthy,
			failing:  []string{"quote-store"},
		},
		{
			name:     "required failure outranks optional",
			required: []HealthChecker{stubChecker{name: "quote-store", err: errors.New("locked")}},
			optional: []HealthChecker{stubChecker{name: "quote-feed", err: down}},
			want:     HealthStatusUnhealthy,
			failing:  []string{"quote-store", "quote-feed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.required {
				require.NoError(t, registry.Register(c))
			}
			for _, c := range tt.optional {
				require.NoError(t, registry.RegisterOptional(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.required)+len(tt.optional))

			for name, check := range result.Checks {
				if slices.Contains(tt.failing, name) {
					assert.Equal(t, HealthStatusUnhealthy, check.Status, name)
					assert.NotEmpty(t, check.Message, name)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status, name)
					assert.Empty(t, check.Message, name)
				}
			}

			for _, c := range tt.optional {
				assert.True(t, result.Checks[c.Name()].Optional)
			}
		})
	}
}

func TestHealthRegistry_CheckAllHonorsContext(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(slowChecker{name: "quote-store"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["quote-store"].Message, "context canceled")
}
