package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		var total, favorites int

		err := runAll(context.Background(),
			func(context.Context) error {
				time.Sleep(5 * time.Millisecond)
				total = 12
				return nil
			},
			func(context.Context) error {
				favorites = 3
				return nil
			},
		)

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		assert.Equal(t, 3, favorites)
	})

	t.Run("first failure cancels the rest", func(t *testing.T) {
		errLocked := errors.New("database is locked")

		err := runAll(context.Background(),
			func(context.Context) error { return errLocked },
			func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		)

		require.ErrorIs(t, err, errLocked)
	})
}

func TestRunEach(t *testing.T) {
	errFeed := errors.New("quote feed unreachable")

	var ran atomic.Int32

	errs := runEach(context.Background(),
		func(context.Context) error { ran.Add(1); return nil },
		func(context.Context) error { ran.Add(1); return errFeed },
		func(ctx context.Context) error {
			ran.Add(1)
			return ctx.Err()
		},
	)

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], errFeed)
	assert.NoError(t, errs[2], "a failure does not cancel siblings")
	assert.Equal(t, int32(3), ran.Load())
}
