package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/notifier/domain"
)

// processEvent turns a decoded event into a persisted notification for
// the job poster.
func (n *Notifier) processEvent(ctx context.Context, msg *domain.EventMessage) error {
	n.logger.Info("Processing event",
		slog.String("event", msg.Event),
		slog.String("job_id", msg.JobID),
		slog.String("application_id", msg.ApplicationID),
	)

	switch msg.Event {
	case domain.EventApplicationReceived:
		return n.notifyApplicationReceived(ctx, msg)
	case domain.EventJobPosted:
		return n.notifyJobPosted(ctx, msg)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEvent, msg.Event)
	}
}

func (n *Notifier) notifyApplicationReceived(ctx context.Context, msg *domain.EventMessage) error {
	digest, err := n.storage.GetApplicationDigest(ctx, msg.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return err
		}
		return domain.NewRetryableError(err)
	}

	notification := &domain.Notification{
		NotificationID: uuid.New().String(),
		RecipientID:    digest.PosterID,
		Kind:           domain.EventApplicationReceived,
		SourceID:       digest.ApplicationID,
		Message: fmt.Sprintf("%s applied for %s at %s",
			digest.ApplicantName, digest.JobTitle, digest.Company),
		CreatedAt: time.Now().UTC(),
	}

	if err := n.storage.InsertNotification(ctx, notification); err != nil {
		return domain.NewRetryableError(err)
	}

	n.logger.Info("Application notification recorded",
		slog.String("recipient_id", notification.RecipientID),
		slog.String("application_id", digest.ApplicationID),
	)

	return nil
}

func (n *Notifier) notifyJobPosted(ctx context.Context, msg *domain.EventMessage) error {
	digest, err := n.storage.GetJobDigest(ctx, msg.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return err
		}
		return domain.NewRetryableError(err)
	}

	notification := &domain.Notification{
		NotificationID: uuid.New().String(),
		RecipientID:    digest.PosterID,
		Kind:           domain.EventJobPosted,
		SourceID:       digest.JobID,
		Message: fmt.Sprintf("Your posting %s at %s is now live",
			digest.Title, digest.Company),
		CreatedAt: time.Now().UTC(),
	}

	if err := n.storage.InsertNotification(ctx, notification); err != nil {
		return domain.NewRetryableError(err)
	}

	n.logger.Info("Job posted notification recorded",
		slog.String("recipient_id", notification.RecipientID),
		slog.String("job_id", digest.JobID),
	)

	return nil
}
