package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

func (s *Storage) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			job_id, title, company, location, job_type,
			description, salary, posted_at, posted_by
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobID,
		job.Title,
		job.Company,
		job.Location,
		job.JobType,
		job.Description,
		job.Salary,
		job.PostedAt,
		job.PostedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (s *Storage) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	query := `
		SELECT
			j.job_id, j.title, j.company, j.location, j.job_type,
			j.description, j.salary, j.posted_at, j.posted_by,
			u.name AS poster_name
		FROM jobs j
		JOIN users u ON u.user_id = j.posted_by
		WHERE j.job_id = $1
	`

	err := s.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// SearchJobs returns jobs matching the filter, newest first. Each call is
// an independent query; no cursor state is retained.
func (s *Storage) SearchJobs(ctx context.Context, filter domain.SearchFilter) ([]model.Job, error) {
	query := `
		SELECT
			j.job_id, j.title, j.company, j.location, j.job_type,
			j.description, j.salary, j.posted_at, j.posted_by,
			u.name AS poster_name
		FROM jobs j
		JOIN users u ON u.user_id = j.posted_by
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	// Filters
	if filter.Text != "" {
		query += fmt.Sprintf(
			" AND (j.title ILIKE $%d OR j.company ILIKE $%d OR j.description ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+filter.Text+"%")
		argIdx++
	}

	if filter.Type != "" {
		query += fmt.Sprintf(" AND j.job_type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	query += " ORDER BY j.posted_at DESC, j.job_id DESC"

	jobs := []model.Job{}
	err := s.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	return jobs, nil
}

// ListJobsByPoster returns the jobs posted by a user together with the
// number of applications each one has received, newest first.
func (s *Storage) ListJobsByPoster(ctx context.Context, userID string) ([]model.PostedJob, error) {
	query := `
		SELECT
			j.job_id, j.title, j.company, j.location, j.job_type,
			j.description, j.salary, j.posted_at, j.posted_by,
			COUNT(a.application_id) AS application_count
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.job_id
		WHERE j.posted_by = $1
		GROUP BY j.job_id
		ORDER BY j.posted_at DESC, j.job_id DESC
	`

	jobs := []model.PostedJob{}
	err := s.db.SelectContext(ctx, &jobs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted jobs: %w", err)
	}

	return jobs, nil
}
