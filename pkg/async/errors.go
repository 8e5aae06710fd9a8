package async

import "errors"

var (
	ErrTimeout          = errors.New("async: operation timed out waiting for future completion")
	ErrNoFutures        = errors.New("async: WaitAny called with empty futures slice")
	ErrNegativeDuration = errors.New("async: duration must be non-negative or Unbounded")
	ErrNilUpstream      = errors.New("async: upstream future is nil")
	ErrNilScheduler     = errors.New("async: scheduler is nil")
)
