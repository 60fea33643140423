// Package service implements the job-board use cases: session
// establishment, job posting and search, and application submission.
// Authorization is driven by an explicit identity parameter; a nil
// identity is an anonymous caller.
package service

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// JobStore is the persistence boundary for job postings
type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	GetJobByID(ctx context.Context, jobID string) (*model.Job, error)
	SearchJobs(ctx context.Context, filter domain.SearchFilter) ([]model.Job, error)
	ListJobsByPoster(ctx context.Context, userID string) ([]model.PostedJob, error)
}

// ApplicationStore is the persistence boundary for applications
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *model.Application) error
	ListApplicationsByUser(ctx context.Context, userID string) ([]model.UserApplication, error)
}

// UserStore is the persistence boundary for the local user mirror
type UserStore interface {
	UpsertUser(ctx context.Context, profile *domain.ProviderProfile) (*model.User, error)
}

// EventPublisher publishes domain events for asynchronous consumers.
// The rabbitmq client satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// TokenIssuer mints session tokens for verified identities
type TokenIssuer interface {
	Issue(identity *domain.Identity) (string, error)
}
