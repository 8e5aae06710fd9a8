package chrono

import (
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// Scheduler runs one-shot callbacks after a duration has elapsed.
// Implementations must be safe for concurrent use.
type Scheduler interface {
	// ScheduleOnce arranges for fn to run exactly once after d has elapsed,
	// on an unspecified goroutine. The returned Timer releases the pending
	// callback; disposing after the callback ran is a no-op.
	ScheduleOnce(d time.Duration, fn func()) Timer

	// Now returns the scheduler's current time.
	Now() time.Time
}

// Timer is the handle for a scheduled callback.
type Timer interface {
	// Dispose releases the scheduled callback if it has not fired yet.
	// Dispose is idempotent and safe to call from multiple goroutines;
	// repeated or concurrent calls have no additional effect.
	Dispose()
}

type clockScheduler struct {
	c clock.Clock
}

var system = &clockScheduler{c: clock.New()}

// System returns the process-wide scheduler backed by the wall clock.
func System() Scheduler {
	return system
}

// FromClock returns a Scheduler backed by the given clock. Passing a
// clock.Mock yields a deterministic scheduler whose callbacks fire when the
// mock's time is advanced.
func FromClock(c clock.Clock) Scheduler {
	return &clockScheduler{c: c}
}

func (s *clockScheduler) ScheduleOnce(d time.Duration, fn func()) Timer {
	return &timerHandle{t: s.c.AfterFunc(d, fn)}
}

func (s *clockScheduler) Now() time.Time {
	return s.c.Now()
}

// timerHandle guards clock.Timer.Stop behind a CAS so that disposal from
// racing call sites is safe and strictly once.
type timerHandle struct {
	t        *clock.Timer
	disposed atomic.Bool
}

func (h *timerHandle) Dispose() {
	if h.disposed.CompareAndSwap(false, true) {
		h.t.Stop()
	}
}
