package async

import (
	"context"
	"time"
)

// Delay returns a future that settles successfully once d has elapsed, or
// earlier with ctx's cancellation cause if ctx is cancelled first. The call
// never blocks; only consumers of the returned future wait.
//
// A zero d yields an already-completed future, and an already-cancelled ctx
// yields an already-failed one; neither schedules a timer. Unbounded with a
// non-cancellable ctx yields a future that never settles ("wait forever").
//
// Invalid arguments are reported synchronously, never through the future.
func Delay(ctx context.Context, d time.Duration, opts ...Option) (*Future[struct{}], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if !validDuration(d) {
		return nil, ErrNegativeDuration
	}

	if d == 0 {
		return Completed(struct{}{}), nil
	}
	if ctx.Err() != nil {
		return Failed[struct{}](cause(ctx)), nil
	}

	r := newRace[struct{}]()
	if d != Unbounded {
		r.setTimer(o.scheduler.ScheduleOnce(d, func() {
			r.settle(struct{}{}, nil)
		}))
	}
	if ctx.Done() != nil {
		r.setUnregister(context.AfterFunc(ctx, func() {
			r.settle(struct{}{}, cause(ctx))
		}))
	}

	// Either trigger may have fired before its own or the other handle was
	// stored; re-running release here closes that window.
	if r.f.IsComplete() {
		r.release()
	}
	return r.f, nil
}
