package async

import (
	"context"
	"time"
)

// WaitTimeout races upstream against a timeout and ctx's cancellation, and
// returns a future that mirrors whichever event occurs first: upstream's own
// outcome (value or error, unwrapped), ErrTimeout, or ctx's cancellation
// cause. The upstream future is never cancelled; once another trigger wins,
// it is merely no longer observed.
//
// An already-completed upstream is returned as-is, with no coordination
// resources allocated. A zero timeout on an incomplete upstream settles
// immediately with ErrTimeout.
//
// Invalid arguments are reported synchronously, never through the future.
func WaitTimeout[T any](ctx context.Context, upstream *Future[T], timeout time.Duration, opts ...Option) (*Future[T], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if upstream == nil {
		return nil, ErrNilUpstream
	}
	if !validDuration(timeout) {
		return nil, ErrNegativeDuration
	}

	if upstream.IsComplete() {
		return upstream, nil
	}
	if timeout == Unbounded && ctx.Done() == nil {
		// Nothing can ever interrupt the wait, so there is no race to run.
		return upstream, nil
	}
	if ctx.Err() != nil {
		return Failed[T](cause(ctx)), nil
	}
	if timeout == 0 {
		return Failed[T](ErrTimeout), nil
	}

	r := newRace[T]()
	if timeout != Unbounded {
		r.setTimer(o.scheduler.ScheduleOnce(timeout, func() {
			var zero T
			r.settle(zero, ErrTimeout)
		}))
	}
	if ctx.Done() != nil {
		r.setUnregister(context.AfterFunc(ctx, func() {
			var zero T
			r.settle(zero, cause(ctx))
		}))
	}
	go func() {
		select {
		case <-r.detach:
			// Another trigger settled the race; stop observing upstream.
		case <-upstream.done:
			r.settle(upstream.result, upstream.err)
		}
	}()

	if r.f.IsComplete() {
		r.release()
	}
	return r.f, nil
}
