package services

import (
	"context"
	"fmt"
	"time"
)

// retry calls fn up to attempts times with a linearly growing delay.
// It stops early when retryable reports false or ctx is done.
func retry[T any](ctx context.Context, attempts int, delay time.Duration, retryable func(error) bool, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if retryable != nil && !retryable(err) {
			return zero, err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("context cancelled: %w", ctx.Err())
		case <-time.After(delay * time.Duration(i+1)):
		}
	}

	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
