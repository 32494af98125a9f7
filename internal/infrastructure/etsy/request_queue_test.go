package etsy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsTasksInOrder(t *testing.T) {
	q := NewQueue(time.Millisecond, time.Millisecond, 0)
	defer q.Close()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		err := q.Do(context.Background(), func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestQueueSpacesOutTasks(t *testing.T) {
	q := NewQueue(20*time.Millisecond, time.Millisecond, 0)
	defer q.Close()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Do(context.Background(), func(ctx context.Context) error {
			return nil
		}))
	}

	// First start is immediate, the next two wait out the interval.
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestQueueRetriesRateLimitedTask(t *testing.T) {
	q := NewQueue(time.Millisecond, time.Millisecond, 3)
	defer q.Close()

	calls := 0
	err := q.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return ErrRateLimited
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestQueueRetryExhaustion(t *testing.T) {
	q := NewQueue(time.Millisecond, time.Millisecond, 2)
	defer q.Close()

	calls := 0
	err := q.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return ErrRateLimited
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "retries exhausted")
	// Initial attempt plus maxRetries, never more.
	assert.Equal(t, 3, calls)
}

func TestQueueDoesNotRetryOtherErrors(t *testing.T) {
	q := NewQueue(time.Millisecond, time.Millisecond, 3)
	defer q.Close()

	boom := errors.New("boom")
	calls := 0
	err := q.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestQueueHonorsCancelledContext(t *testing.T) {
	q := NewQueue(time.Millisecond, time.Millisecond, 0)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Do(ctx, func(ctx context.Context) error {
		t.Error("task must not run after cancellation")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
