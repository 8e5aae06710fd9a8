package async

import (
	"sync"

	"github.com/dmitrymomot/asynckit/pkg/chrono"
)

// race holds the per-call coordination state for Delay and WaitTimeout: the
// settlement cell plus the resource handles of every attached trigger. Each
// call gets a fresh race value; nothing is shared or pooled across calls.
type race[T any] struct {
	f *Future[T]

	// detach is the private continuation-cancel signal: closing it tells the
	// upstream-observation goroutine to exit without side effects. It is
	// never exposed to callers and never cancels the upstream itself.
	detach     chan struct{}
	detachOnce sync.Once

	// Handles are stored after their trigger was attached, so a trigger that
	// fires during setup may observe them as nil; the coordinators' post-
	// attach check re-runs release once every handle is in place.
	mu         sync.Mutex
	timer      chrono.Timer
	unregister func() bool
}

func newRace[T any]() *race[T] {
	return &race[T]{f: newFuture[T](), detach: make(chan struct{})}
}

// settle attempts to fix the outcome; the winning trigger tears down every
// attached resource.
func (r *race[T]) settle(v T, err error) {
	if r.f.trySettle(v, err) {
		r.release()
	}
}

// release disposes all attached trigger resources. Every handle tolerates
// repeated and concurrent disposal, so release may be called from both the
// winning trigger and the defensive post-attach check.
func (r *race[T]) release() {
	r.detachOnce.Do(func() { close(r.detach) })
	r.mu.Lock()
	timer, unregister := r.timer, r.unregister
	r.mu.Unlock()
	if timer != nil {
		timer.Dispose()
	}
	if unregister != nil {
		unregister()
	}
}

func (r *race[T]) setTimer(t chrono.Timer) {
	r.mu.Lock()
	r.timer = t
	r.mu.Unlock()
}

func (r *race[T]) setUnregister(fn func() bool) {
	r.mu.Lock()
	r.unregister = fn
	r.mu.Unlock()
}
