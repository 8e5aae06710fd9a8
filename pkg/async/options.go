package async

import (
	"math"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/chrono"
)

// Unbounded is the sentinel duration meaning "no time limit". Any other
// negative duration is rejected with ErrNegativeDuration.
const Unbounded time.Duration = math.MinInt64

// Option configures the Delay and WaitTimeout coordinators.
type Option func(*options)

type options struct {
	scheduler chrono.Scheduler
}

// WithScheduler sets the time source used to schedule timeout callbacks.
// Defaults to chrono.System.
func WithScheduler(s chrono.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{scheduler: chrono.System()}
	for _, opt := range opts {
		opt(o)
	}
	if o.scheduler == nil {
		return nil, ErrNilScheduler
	}
	return o, nil
}

func validDuration(d time.Duration) bool {
	return d >= 0 || d == Unbounded
}
