package domain

import "errors"

var (
	// ErrApplicationNotFound is returned when the event references an application that no longer exists
	ErrApplicationNotFound = errors.New("application not found")

	// ErrJobNotFound is returned when the event references a job that no longer exists
	ErrJobNotFound = errors.New("job not found")

	// ErrUnknownEvent is returned for event names this service does not handle
	ErrUnknownEvent = errors.New("unknown event")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
