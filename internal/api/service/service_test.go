package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeJobStore is an in-memory JobStore
type fakeJobStore struct {
	mu   sync.Mutex
	jobs []model.Job
	err  error
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job *model.Job) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeJobStore) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.jobs {
		if f.jobs[i].JobID == jobID {
			job := f.jobs[i]
			return &job, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (f *fakeJobStore) SearchJobs(ctx context.Context, filter domain.SearchFilter) ([]model.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Job(nil), f.jobs...), nil
}

func (f *fakeJobStore) ListJobsByPoster(ctx context.Context, userID string) ([]model.PostedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PostedJob
	for i := range f.jobs {
		if f.jobs[i].PostedBy == userID {
			out = append(out, model.PostedJob{Job: f.jobs[i]})
		}
	}
	return out, nil
}

// fakeApplicationStore enforces (job_id, user_id) uniqueness the way the
// database constraint does.
type fakeApplicationStore struct {
	mu      sync.Mutex
	jobIDs  map[string]bool
	byPair  map[[2]string]bool
	created []model.Application
	listErr error
}

func newFakeApplicationStore(jobIDs ...string) *fakeApplicationStore {
	known := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		known[id] = true
	}
	return &fakeApplicationStore{
		jobIDs: known,
		byPair: make(map[[2]string]bool),
	}
}

func (f *fakeApplicationStore) CreateApplication(ctx context.Context, app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.jobIDs[app.JobID] {
		return domain.ErrJobNotFound
	}

	pair := [2]string{app.JobID, app.UserID}
	if f.byPair[pair] {
		return domain.ErrDuplicateApplication
	}
	f.byPair[pair] = true
	f.created = append(f.created, *app)
	return nil
}

func (f *fakeApplicationStore) ListApplicationsByUser(ctx context.Context, userID string) ([]model.UserApplication, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.UserApplication
	for _, app := range f.created {
		if app.UserID == userID {
			out = append(out, model.UserApplication{
				ApplicationID: app.ApplicationID,
				Status:        app.Status,
				AppliedAt:     app.AppliedAt,
				JobID:         app.JobID,
			})
		}
	}
	return out, nil
}

// fakePublisher records published event bodies
type fakePublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, body []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}

func (f *fakePublisher) published() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.events...)
}
