package etsy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"etsysync/pkg/logger"
)

// ErrRateLimited is returned by a unit of work that hit the API's request
// ceiling (HTTP 429). The queue retries these internally.
var ErrRateLimited = errors.New("etsy: rate limited")

// RequestQueue serializes units of work against the Etsy API. Implementations
// guarantee FIFO order and a minimum spacing between starts.
type RequestQueue interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type queueTask struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Queue is a single-worker FIFO request queue. One instance per API client,
// injected, so one store's retries cannot starve an unrelated client.
type Queue struct {
	tasks       chan *queueTask
	limiter     *rate.Limiter
	backoffBase time.Duration
	maxRetries  int
	stop        chan struct{}
}

// NewQueue starts the worker. minInterval spaces out unit starts (100ms by
// default), backoffBase seeds the 429 backoff (1s by default), maxRetries
// bounds 429 retries per unit.
func NewQueue(minInterval, backoffBase time.Duration, maxRetries int) *Queue {
	if minInterval <= 0 {
		minInterval = 100 * time.Millisecond
	}
	if backoffBase <= 0 {
		backoffBase = time.Second
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	q := &Queue{
		tasks:       make(chan *queueTask, 256),
		limiter:     rate.NewLimiter(rate.Every(minInterval), 1),
		backoffBase: backoffBase,
		maxRetries:  maxRetries,
		stop:        make(chan struct{}),
	}
	go q.worker()

	return q
}

// Do submits fn and blocks until it finishes, fails, or ctx is cancelled.
// Cancellation while queued abandons the unit before it starts.
func (q *Queue) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	task := &queueTask{
		ctx:  ctx,
		fn:   fn,
		done: make(chan error, 1),
	}

	select {
	case q.tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-task.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker. Queued tasks that have not started are dropped
// with an error.
func (q *Queue) Close() {
	close(q.stop)
}

func (q *Queue) worker() {
	for {
		select {
		case <-q.stop:
			q.drain()
			return
		case task := <-q.tasks:
			q.run(task)
		}
	}
}

func (q *Queue) drain() {
	for {
		select {
		case task := <-q.tasks:
			task.done <- errors.New("etsy: request queue closed")
		default:
			return
		}
	}
}

func (q *Queue) run(task *queueTask) {
	if err := task.ctx.Err(); err != nil {
		task.done <- err
		return
	}

	if err := q.limiter.Wait(task.ctx); err != nil {
		task.done <- err
		return
	}

	err := task.fn(task.ctx)
	for attempt := 0; errors.Is(err, ErrRateLimited); attempt++ {
		if attempt >= q.maxRetries {
			task.done <- fmt.Errorf("etsy: rate limit retries exhausted after %d attempts: %w", q.maxRetries, err)
			return
		}

		backoff := q.backoffBase << attempt
		logger.Warn("Etsy rate limited, retrying in %s (attempt %d/%d)", backoff, attempt+1, q.maxRetries)

		select {
		case <-time.After(backoff):
		case <-task.ctx.Done():
			task.done <- task.ctx.Err()
			return
		}

		if werr := q.limiter.Wait(task.ctx); werr != nil {
			task.done <- werr
			return
		}
		err = task.fn(task.ctx)
	}

	task.done <- err
}
