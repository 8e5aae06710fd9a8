package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/async"
	"github.com/dmitrymomot/asynckit/pkg/chrono"
	"github.com/dmitrymomot/asynckit/pkg/chrono/chronotest"
)

func TestWaitTimeout(t *testing.T) {
	t.Parallel()

	t.Run("upstream completes before the timeout", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)
		p := async.NewPromise[string]()

		f, err := async.WaitTimeout(context.Background(), p.Future(), time.Minute,
			async.WithScheduler(spy))
		require.NoError(t, err)
		require.False(t, f.IsComplete())

		p.Resolve("payload")

		v, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "payload", v, "success must carry upstream's value")

		assert.Eventually(t, func() bool { return spy.Live() == 0 },
			time.Second, 5*time.Millisecond, "no timer may stay outstanding")
	})

	t.Run("timeout elapses first", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		p := async.NewPromise[string]()

		f, err := async.WaitTimeout(context.Background(), p.Future(), time.Minute,
			async.WithScheduler(chrono.FromClock(mock)))
		require.NoError(t, err)

		mock.Add(time.Minute)
		_, err = f.AwaitWithTimeout(time.Second)
		assert.ErrorIs(t, err, async.ErrTimeout)

		// A late upstream completion is no longer observed.
		p.Resolve("too late")
		time.Sleep(20 * time.Millisecond)
		v, err := f.Await()
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.Empty(t, v)
	})

	t.Run("upstream is never cancelled by the coordinator", func(t *testing.T) {
		t.Parallel()
		mock := clock.NewMock()
		p := async.NewPromise[int]()

		f, err := async.WaitTimeout(context.Background(), p.Future(), time.Minute,
			async.WithScheduler(chrono.FromClock(mock)))
		require.NoError(t, err)

		mock.Add(time.Minute)
		_, err = f.AwaitWithTimeout(time.Second)
		require.ErrorIs(t, err, async.ErrTimeout)

		assert.False(t, p.Future().IsComplete(), "upstream must keep running")
		require.True(t, p.Resolve(1), "upstream settles on its own terms")
	})

	t.Run("cancellation elapses first", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)
		p := async.NewPromise[int]()
		reason := errors.New("caller gave up")
		ctx, cancel := context.WithCancelCause(context.Background())
		defer cancel(nil)

		f, err := async.WaitTimeout(ctx, p.Future(), time.Minute, async.WithScheduler(spy))
		require.NoError(t, err)

		cancel(reason)
		_, err = f.AwaitWithTimeout(time.Second)
		assert.ErrorIs(t, err, reason)

		assert.Eventually(t, func() bool { return spy.Live() == 0 },
			time.Second, 5*time.Millisecond)
	})

	t.Run("upstream failure propagates unwrapped", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("upstream exploded")
		p := async.NewPromise[int]()

		f, err := async.WaitTimeout(context.Background(), p.Future(), time.Minute,
			async.WithScheduler(chronotest.NewSpy(nil)))
		require.NoError(t, err)

		p.Reject(sentinel)
		_, err = f.AwaitWithTimeout(time.Second)
		require.ErrorIs(t, err, sentinel)
		assert.NotErrorIs(t, err, async.ErrTimeout)
	})

	t.Run("already complete upstream is returned as-is", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)
		upstream := async.Completed(99)

		f, err := async.WaitTimeout(context.Background(), upstream, time.Minute,
			async.WithScheduler(spy))
		require.NoError(t, err)

		assert.Same(t, upstream, f, "no wrapping on the fast path")
		assert.Zero(t, spy.Scheduled(), "no coordination resources allocated")

		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 99, v)
	})

	t.Run("unbounded timeout without cancellation is a passthrough", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)
		p := async.NewPromise[int]()

		f, err := async.WaitTimeout(context.Background(), p.Future(), async.Unbounded,
			async.WithScheduler(spy))
		require.NoError(t, err)

		assert.Same(t, p.Future(), f)
		assert.Zero(t, spy.Scheduled())
	})

	t.Run("unbounded timeout still honours cancellation", func(t *testing.T) {
		t.Parallel()
		p := async.NewPromise[int]()
		ctx, cancel := context.WithCancel(context.Background())

		f, err := async.WaitTimeout(ctx, p.Future(), async.Unbounded,
			async.WithScheduler(chronotest.NewSpy(nil)))
		require.NoError(t, err)
		require.NotSame(t, p.Future(), f)

		cancel()
		_, err = f.AwaitWithTimeout(time.Second)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("already cancelled context", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f, err := async.WaitTimeout(ctx, async.NewPromise[int]().Future(), time.Minute,
			async.WithScheduler(spy))
		require.NoError(t, err)

		require.True(t, f.IsComplete())
		_, err = f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, spy.Scheduled())
	})

	t.Run("zero timeout on incomplete upstream times out immediately", func(t *testing.T) {
		t.Parallel()
		spy := chronotest.NewSpy(nil)

		f, err := async.WaitTimeout(context.Background(), async.NewPromise[int]().Future(), 0,
			async.WithScheduler(spy))
		require.NoError(t, err)

		require.True(t, f.IsComplete())
		_, err = f.Await()
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.Zero(t, spy.Scheduled())
	})

	t.Run("validation errors are synchronous", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		_, err := async.WaitTimeout[int](ctx, nil, time.Minute)
		assert.ErrorIs(t, err, async.ErrNilUpstream)

		_, err = async.WaitTimeout(ctx, async.Completed(1), -time.Second)
		assert.ErrorIs(t, err, async.ErrNegativeDuration)

		_, err = async.WaitTimeout(ctx, async.Completed(1), time.Second, async.WithScheduler(nil))
		assert.ErrorIs(t, err, async.ErrNilScheduler)
	})
}

// TestWaitTimeoutRace drives the timer and the cancellation request from two
// independent goroutines, repeatedly, and checks that every run settles to
// exactly one outcome that never changes afterwards, with every timer handle
// released.
func TestWaitTimeoutRace(t *testing.T) {
	t.Parallel()

	const rounds = 200
	spy := chronotest.NewSpy(chrono.System())

	for range rounds {
		ctx, cancel := context.WithCancel(context.Background())
		p := async.NewPromise[int]()

		f, err := async.WaitTimeout(ctx, p.Future(), time.Microsecond,
			async.WithScheduler(spy))
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			cancel()
		}()

		_, err = f.AwaitWithTimeout(time.Second)
		require.Error(t, err)
		require.True(t,
			errors.Is(err, async.ErrTimeout) || errors.Is(err, context.Canceled),
			"unexpected outcome: %v", err)

		// The settled outcome must be stable across repeated reads.
		_, again := f.Await()
		require.ErrorIs(t, again, err)

		wg.Wait()
		cancel()
	}

	assert.Eventually(t, func() bool { return spy.Live() == 0 },
		time.Second, 5*time.Millisecond, "every timer must be disposed")
	assert.GreaterOrEqual(t, spy.Disposes(), rounds)
}
