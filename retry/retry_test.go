package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/addressbook/retry"
)

var fast = retry.Policy{Attempts: 3, Delay: time.Millisecond}

func TestDo_Success(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("busy")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ReturnsLastError(t *testing.T) {
	calls := 0
	boom := errors.New("disk full")
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	calls := 0
	boom := errors.New("bad data")
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		return retry.Permanent(boom)
	})
	require.ErrorIs(t, err, boom)
	assert.True(t, retry.IsPermanent(err))
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx, retry.Policy{Attempts: 10, Delay: time.Millisecond}, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_OnRetry(t *testing.T) {
	var seen []error
	p := fast
	p.OnRetry = func(err error, _ time.Duration) { seen = append(seen, err) }

	_ = retry.Do(context.Background(), p, func(context.Context) error {
		return errors.New("fail")
	})
	assert.Len(t, seen, 2)
}

func TestDo_ZeroPolicyUsesDefaults(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), retry.Policy{Delay: -1}, func(context.Context) error {
		calls++
		return errors.New("fail")
	})
	require.Error(t, err)
	assert.Equal(t, retry.DefaultAttempts, calls)
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, retry.Permanent(nil))

	base := errors.New("x")
	p := retry.Permanent(base)
	assert.True(t, retry.IsPermanent(p))
	assert.Equal(t, p, retry.Permanent(p))
	assert.ErrorIs(t, p, base)
	assert.False(t, retry.IsPermanent(base))
}
