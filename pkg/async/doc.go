// Package async provides generic futures together with two time-based
// completion primitives built on an injectable time source: Delay, which
// produces a future that settles after a duration, and WaitTimeout, which
// races an existing future against a timeout and a cancellation signal.
//
// The package is centred around the generic type Future, a single-assignment
// settlement cell: whichever trigger (timer fire, context cancellation,
// upstream completion, function return) settles it first fixes the outcome,
// exactly once, and every other trigger's resources are released regardless
// of the order events land in. A Future can be obtained from Async, which
// runs a function on its own goroutine, from a Promise, which is completed
// explicitly, or from the Delay and WaitTimeout coordinators. Consumers wait
// with Await, bound the wait with AwaitWithTimeout, or poll with IsComplete.
//
// Cancellation is plain context.Context: a coordinator's future settles with
// the context's cancellation cause when the context is cancelled first.
// Cancelling the context never cancels an upstream future passed to
// WaitTimeout; the coordinator merely stops observing it.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/asynckit/pkg/async"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    upstream := async.Async(ctx, 42, func(_ context.Context, v int) (string, error) {
//	        return slowLookup(v)
//	    })
//
//	    bounded, err := async.WaitTimeout(ctx, upstream, 2*time.Second)
//	    if err != nil {
//	        log.Fatal(err) // invalid arguments are reported synchronously
//	    }
//
//	    res, err := bounded.Await()
//	    if errors.Is(err, async.ErrTimeout) {
//	        // the lookup took longer than two seconds
//	    }
//	}
//
// # Time source
//
// Delay and WaitTimeout schedule their timeout callbacks through a
// chrono.Scheduler, defaulting to the wall clock. Tests inject a
// deterministic one:
//
//	mock := clock.NewMock()
//	f, _ := async.Delay(ctx, time.Minute, async.WithScheduler(chrono.FromClock(mock)))
//	mock.Add(time.Minute) // f settles now
//
// # Error Handling
//
// Settlement outcomes travel through the future's normal result channel: a
// cancelled coordinator future carries the context's cause, a timed-out
// WaitTimeout carries ErrTimeout, and an upstream failure is forwarded
// unwrapped. Validation problems (negative durations, nil upstream, nil
// scheduler) are returned synchronously from the coordinator call and never
// surface through a future.
//
// # Coordinating multiple futures
//
// The helpers WaitAll and WaitAny make it easy to coordinate several
// concurrent tasks – either collecting every result or returning the first
// one to finish.
//
// See the individual function-level comments for additional details and
// behaviour guarantees.
package async
