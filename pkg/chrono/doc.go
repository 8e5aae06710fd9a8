// Package chrono provides the injectable time source used by the async
// coordinators: a Scheduler that runs one-shot callbacks after a duration, and
// a Timer handle whose Dispose is idempotent and safe for concurrent callers.
//
// The package is a thin layer over github.com/benbjohnson/clock, so the same
// code path serves both wall-clock time and a manually-advanced mock clock in
// tests.
//
// # Usage
//
//	import (
//	    "time"
//
//	    "github.com/dmitrymomot/asynckit/pkg/chrono"
//	)
//
//	s := chrono.System()
//	timer := s.ScheduleOnce(5*time.Second, func() {
//	    // runs once, five seconds from now, on its own goroutine
//	})
//	// ...
//	timer.Dispose() // releases the callback if it has not fired yet
//
// # Deterministic time in tests
//
//	mock := clock.NewMock()
//	s := chrono.FromClock(mock)
//	timer := s.ScheduleOnce(time.Minute, fired)
//	mock.Add(time.Minute) // fires the callback synchronously
//
// Dispose never reports whether the callback ran; callers that race disposal
// against firing must coordinate through their own state, which is exactly
// what the async package's settlement discipline does.
package chrono
