//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) retryPolicy {
	p := defaultRetry
	p.attempts = attempts
	p.base = time.Millisecond
	return p
}

func TestRetryPolicy(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	deadlock := &pgconn.PgError{Code: "40P01"}

	t.Run("success: replays until the conflict clears", func(t *testing.T) {
		calls := 0
		err := fastPolicy(4).run(context.Background(), func() error {
			calls++
			if calls < 3 {
				return serialization
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("error: other failures are returned at once", func(t *testing.T) {
		calls := 0
		exclusion := &pgconn.PgError{Code: "23P01"}
		err := fastPolicy(4).run(context.Background(), func() error {
			calls++
			return exclusion
		})
		require.ErrorIs(t, err, exclusion)
		assert.Equal(t, 1, calls)
	})

	t.Run("error: exhausted policy is marked", func(t *testing.T) {
		calls := 0
		err := fastPolicy(3).run(context.Background(), func() error {
			calls++
			return deadlock
		})
		assert.Equal(t, 3, calls)
		assert.True(t, errs.Is(err, errMaxRetriesExceeded))
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "40P01", pgErr.Code)
	})

	t.Run("error: cancelled context stops the wait", func(t *testing.T) {
		p := fastPolicy(4)
		p.base = time.Hour
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := p.run(ctx, func() error {
			calls++
			cancel()
			return serialization
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestBackoff(t *testing.T) {
	p := retryPolicy{base: 100 * time.Millisecond}
	for n, floor := range map[int]time.Duration{1: 100 * time.Millisecond, 2: 200 * time.Millisecond, 3: 400 * time.Millisecond} {
		got := p.backoff(n)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5)
	}
}
