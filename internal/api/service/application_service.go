package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// ApplicationService implements the application submission use cases
type ApplicationService struct {
	store  ApplicationStore
	events EventPublisher
	logger *slog.Logger
}

// NewApplicationService creates a new ApplicationService instance
func NewApplicationService(store ApplicationStore, events EventPublisher, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{
		store:  store,
		events: events,
		logger: logger,
	}
}

// Apply submits an application for a job. The (job_id, user_id) pair is
// unique; the second and any concurrent duplicate attempts fail with
// domain.ErrDuplicateApplication, and an absent job fails with
// domain.ErrJobNotFound.
func (s *ApplicationService) Apply(ctx context.Context, identity *domain.Identity, jobID string) (*model.Application, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	app := &model.Application{
		ApplicationID: uuid.New().String(),
		JobID:         jobID,
		UserID:        identity.UserID,
		Status:        domain.ApplicationStatusPending,
		AppliedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to apply: %w", err)
	}

	s.logger.Info("Application submitted",
		slog.String("application_id", app.ApplicationID),
		slog.String("job_id", app.JobID),
		slog.String("user_id", app.UserID),
	)

	publishEvent(ctx, s.events, s.logger, Event{
		Event:         EventApplicationReceived,
		JobID:         app.JobID,
		ApplicationID: app.ApplicationID,
	})

	return app, nil
}

// ListApplications returns the caller's applications, most recent first
func (s *ApplicationService) ListApplications(ctx context.Context, identity *domain.Identity) ([]model.UserApplication, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	return s.store.ListApplicationsByUser(ctx, identity.UserID)
}
