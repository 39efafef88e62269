package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type retryPolicy struct {
	attempts  int
	base      time.Duration
	retryable func(error) bool
}

var defaultRetry = retryPolicy{attempts: 4, base: 100 * time.Millisecond, retryable: pgconv.IsRetryable}

// run calls attempt until it succeeds, fails with a non-retryable error,
// or the policy is exhausted.
func (p retryPolicy) run(ctx context.Context, attempt func() error) error {
	var err error
	for n := 1; n <= p.attempts; n++ {
		if err = attempt(); err == nil || !p.retryable(err) {
			return err
		}
		if n == p.attempts {
			break
		}

		wait := p.backoff(n)
		slog.Warn("retrying transaction", "attempt", n, "wait_ms", wait.Milliseconds(), "error", err.Error())

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	slog.Error("transaction failed after max retries", "attempts", p.attempts, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// backoff doubles per attempt with up to 20% jitter
func (p retryPolicy) backoff(n int) time.Duration {
	wait := p.base << (n - 1)
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}
