package adapter

import (
	"context"
	"time"
)

// RetryPolicy is the single retry policy shared by every LLM call.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetryPolicy retries twice after the initial attempt with a doubling
// backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 3,
		Backoff:  500 * time.Millisecond,
	}
}

// Do runs fn until it succeeds, attempts are exhausted, or the context is
// cancelled. The last error is returned.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	backoff := p.Backoff

	var err error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			backoff *= 2
		}

		if err = fn(ctx); err == nil {
			return nil
		}
	}

	return err
}
