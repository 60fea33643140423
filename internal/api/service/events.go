package service

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Event names published to the notification exchange
const (
	EventJobPosted           = "job.posted"
	EventApplicationReceived = "application.received"
)

// Event is the message body published after a successful write. The
// notifier service consumes these and fans out notifications.
type Event struct {
	Event         string `json:"event"`
	JobID         string `json:"job_id"`
	ApplicationID string `json:"application_id,omitempty"`
}

// publishEvent sends an event best-effort: a broker failure is logged and
// never fails the request that triggered it.
func publishEvent(ctx context.Context, events EventPublisher, logger *slog.Logger, evt Event) {
	if events == nil {
		return
	}

	body, err := json.Marshal(evt)
	if err != nil {
		logger.Error("Failed to marshal event",
			slog.String("event", evt.Event),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := events.Publish(ctx, body, "application/json"); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event", evt.Event),
			slog.String("job_id", evt.JobID),
			slog.String("error", err.Error()),
		)
	}
}
