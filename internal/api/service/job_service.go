package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// JobService implements the job posting and browsing use cases
type JobService struct {
	store  JobStore
	events EventPublisher
	logger *slog.Logger
}

// NewJobService creates a new JobService instance
func NewJobService(store JobStore, events EventPublisher, logger *slog.Logger) *JobService {
	return &JobService{
		store:  store,
		events: events,
		logger: logger,
	}
}

// PostJob creates a job on behalf of an authenticated user. Anonymous
// callers are rejected before anything is persisted.
func (s *JobService) PostJob(ctx context.Context, identity *domain.Identity, input *domain.JobInput) (*model.Job, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	job := &model.Job{
		JobID:       uuid.New().String(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		JobType:     input.Type,
		Description: input.Description,
		Salary:      sql.NullString{String: input.Salary, Valid: input.Salary != ""},
		PostedAt:    time.Now().UTC(),
		PostedBy:    identity.UserID,
		PosterName:  identity.Name,
	}

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to post job: %w", err)
	}

	s.logger.Info("Job posted",
		slog.String("job_id", job.JobID),
		slog.String("posted_by", job.PostedBy),
		slog.String("job_type", job.JobType),
	)

	publishEvent(ctx, s.events, s.logger, Event{
		Event: EventJobPosted,
		JobID: job.JobID,
	})

	return job, nil
}

// BrowseJobs searches job postings. Anonymous browsing is permitted.
func (s *JobService) BrowseJobs(ctx context.Context, filter domain.SearchFilter) ([]model.Job, error) {
	return s.store.SearchJobs(ctx, filter)
}

// GetJob fetches a single job posting. Anonymous access is permitted.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	return s.store.GetJobByID(ctx, jobID)
}

// ListPostedJobs returns the caller's own postings with application counts
func (s *JobService) ListPostedJobs(ctx context.Context, identity *domain.Identity) ([]model.PostedJob, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	return s.store.ListJobsByPoster(ctx, identity.UserID)
}
