package async

import (
	"context"
	"sync/atomic"
	"time"
)

// Future represents the result of an asynchronous computation. A Future is a
// single-assignment cell: the first trigger to settle it fixes the outcome
// permanently, and every later attempt is rejected without touching the
// stored result.
type Future[T any] struct {
	settled atomic.Bool
	result  T
	err     error
	done    chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed returns a future already settled with value v.
func Completed[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.trySettle(v, nil)
	return f
}

// Failed returns a future already settled with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.trySettle(zero, err)
	return f
}

// trySettle performs the Pending -> Settled transition. Only the caller that
// wins the compare-and-set stores the outcome and unblocks observers; losers
// return false and must not re-read or mutate the result. A true return is
// also the one signal that authorizes disposing the other triggers'
// resources.
func (f *Future[T]) trySettle(result T, err error) bool {
	if !f.settled.CompareAndSwap(false, true) {
		return false
	}
	f.result = result
	f.err = err
	close(f.done)
	return true
}

// Await waits for the future to settle and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the future to settle with a timeout.
// Returns the result and error if the future settles before the timeout.
// If the timeout occurs first, returns ErrTimeout; the future itself is
// unaffected and may still settle later.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete checks if the future has settled without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// cause extracts the cancellation reason from a done context, falling back to
// ctx.Err() when no explicit cause was recorded.
func cause(ctx context.Context) error {
	if err := context.Cause(ctx); err != nil {
		return err
	}
	return ctx.Err()
}
