package async

// Promise is the producing side of a Future that is completed explicitly
// rather than by running a function. The first Resolve or Reject wins;
// subsequent calls report false and leave the outcome untouched.
type Promise[T any] struct {
	f *Future[T]
}

// NewPromise creates an unsettled promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{f: newFuture[T]()}
}

// Future returns the consuming view of the promise.
func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

// Resolve settles the promise's future with v. Reports whether this call
// performed the settlement.
func (p *Promise[T]) Resolve(v T) bool {
	return p.f.trySettle(v, nil)
}

// Reject settles the promise's future with err. Reports whether this call
// performed the settlement.
func (p *Promise[T]) Reject(err error) bool {
	var zero T
	return p.f.trySettle(zero, err)
}
