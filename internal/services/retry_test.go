package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := retry(context.Background(), 3, time.Millisecond, nil, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUp(t *testing.T) {
	cause := errors.New("still down")
	calls := 0
	_, err := retry(context.Background(), 2, time.Millisecond, nil, func() (int, error) {
		calls++
		return 0, cause
	})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, calls)
}

func TestRetry_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("not found")
	calls := 0
	_, err := retry(context.Background(), 5, time.Millisecond, func(err error) bool {
		return !errors.Is(err, permanent)
	}, func() ([]byte, error) {
		calls++
		return nil, permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retry(ctx, 3, time.Hour, nil, func() (int, error) {
		return 0, errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
