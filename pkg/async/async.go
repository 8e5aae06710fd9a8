package async

import (
	"context"
)

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		// Early exit prevents doing work when the context is pre-canceled
		select {
		case <-ctx.Done():
			var zero U
			f.trySettle(zero, cause(ctx))
			return
		default:
		}

		res, err := fn(ctx, param)
		f.trySettle(res, err)
	}()

	return f
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will complete naturally
// when their respective futures finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	done := make(chan struct {
		index  int
		result U
		err    error
	}, 1)

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			select {
			case done <- struct {
				index  int
				result U
				err    error
			}{index, result, err}:
			default:
				// Another future already won; drop this result.
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
