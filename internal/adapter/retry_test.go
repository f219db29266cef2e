package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Do(t *testing.T) {
	t.Run("returns on first success without waiting", func(t *testing.T) {
		policy := RetryPolicy{Attempts: 3, Backoff: time.Hour}

		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++

			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until a success", func(t *testing.T) {
		policy := RetryPolicy{Attempts: 3, Backoff: time.Millisecond}

		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return assert.AnError
			}

			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error once attempts are exhausted", func(t *testing.T) {
		policy := RetryPolicy{Attempts: 2, Backoff: time.Millisecond}

		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++

			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 2, calls)
	})

	t.Run("a cancelled context stops the retries", func(t *testing.T) {
		policy := RetryPolicy{Attempts: 5, Backoff: time.Hour}

		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		done := make(chan error, 1)

		go func() {
			done <- policy.Do(ctx, func(context.Context) error {
				calls++

				return assert.AnError
			})
		}()

		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
			assert.Equal(t, 1, calls)
		case <-time.After(time.Second):
			t.Fatal("retry did not observe the cancellation")
		}
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		policy := RetryPolicy{}

		calls := 0
		_ = policy.Do(context.Background(), func(context.Context) error {
			calls++

			return nil
		})

		assert.Equal(t, 1, calls)
	})
}
