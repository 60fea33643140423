package notifier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck/internal/notifier/domain"
)

func TestShouldRequeueEvent(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		requeue bool
	}{
		{
			name:    "application not found is permanent",
			err:     domain.ErrApplicationNotFound,
			requeue: false,
		},
		{
			name:    "job not found is permanent",
			err:     domain.ErrJobNotFound,
			requeue: false,
		},
		{
			name:    "unknown event is permanent",
			err:     domain.ErrUnknownEvent,
			requeue: false,
		},
		{
			name:    "wrapped unknown event is permanent",
			err:     fmt.Errorf("%w: %q", domain.ErrUnknownEvent, "job.deleted"),
			requeue: false,
		},
		{
			name:    "retryable error is requeued",
			err:     domain.NewRetryableError(errors.New("db connection lost")),
			requeue: true,
		},
		{
			name:    "plain error is not requeued",
			err:     errors.New("something unexpected"),
			requeue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.requeue, shouldRequeueEvent(tt.err))
		})
	}
}

func TestShouldRequeueEvent_WrappedErrors(t *testing.T) {
	wrappedNotFound := domain.NewRetryableError(domain.ErrJobNotFound)
	// Not-found dominates even when wrapped as retryable
	assert.False(t, shouldRequeueEvent(wrappedNotFound))
}
