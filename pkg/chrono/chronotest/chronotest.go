// Package chronotest provides a spy Scheduler for asserting on timer usage in
// tests: how many callbacks were scheduled, how many handles are still live,
// and how often Dispose was called.
package chronotest

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/asynckit/pkg/chrono"
)

// SpyScheduler wraps another Scheduler and records scheduling activity.
// The zero value is not usable; use NewSpy.
type SpyScheduler struct {
	inner chrono.Scheduler

	mu       sync.Mutex
	started  int
	live     int
	disposes int
}

// NewSpy returns a SpyScheduler delegating to inner. A nil inner defaults to
// a scheduler over a fresh mock clock, which never fires on its own.
func NewSpy(inner chrono.Scheduler) *SpyScheduler {
	if inner == nil {
		inner = chrono.FromClock(clock.NewMock())
	}
	return &SpyScheduler{inner: inner}
}

func (s *SpyScheduler) ScheduleOnce(d time.Duration, fn func()) chrono.Timer {
	t := s.inner.ScheduleOnce(d, fn)
	s.mu.Lock()
	s.started++
	s.live++
	s.mu.Unlock()
	return &spyTimer{spy: s, inner: t}
}

func (s *SpyScheduler) Now() time.Time {
	return s.inner.Now()
}

// Scheduled reports how many callbacks have been scheduled in total.
func (s *SpyScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Live reports how many scheduled timers have not been disposed yet.
func (s *SpyScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Disposes reports the total number of Dispose calls, counting repeats.
func (s *SpyScheduler) Disposes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposes
}

type spyTimer struct {
	spy   *SpyScheduler
	inner chrono.Timer
	once  sync.Once
}

func (t *spyTimer) Dispose() {
	t.spy.mu.Lock()
	t.spy.disposes++
	t.spy.mu.Unlock()
	t.once.Do(func() {
		t.spy.mu.Lock()
		t.spy.live--
		t.spy.mu.Unlock()
	})
	t.inner.Dispose()
}
