package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// Postgres error codes used to map constraint violations to domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// CreateApplication inserts an application. Uniqueness of (job_id, user_id)
// is enforced by the database constraint, so concurrent duplicates resolve
// to exactly one success without an application-level check.
func (s *Storage) CreateApplication(ctx context.Context, app *model.Application) error {
	query := `
		INSERT INTO applications (
			application_id, job_id, user_id, status, applied_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		app.ApplicationID,
		app.JobID,
		app.UserID,
		app.Status,
		app.AppliedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				s.logger.Warn("Duplicate application rejected",
					slog.String("job_id", app.JobID),
					slog.String("user_id", app.UserID),
				)
				return domain.ErrDuplicateApplication
			case pqForeignKeyViolation:
				if pqErr.Constraint == "applications_user_id_fkey" {
					return domain.ErrUserNotFound
				}
				return domain.ErrJobNotFound
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// ListApplicationsByUser returns a user's applications annotated with the
// job each one targets, most recent first.
func (s *Storage) ListApplicationsByUser(ctx context.Context, userID string) ([]model.UserApplication, error) {
	query := `
		SELECT
			a.application_id, a.status, a.applied_at,
			j.job_id, j.title, j.company, j.location, j.job_type, j.salary,
			u.name AS poster_name
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN users u ON u.user_id = j.posted_by
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC, a.application_id DESC
	`

	apps := []model.UserApplication{}
	err := s.db.SelectContext(ctx, &apps, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}
