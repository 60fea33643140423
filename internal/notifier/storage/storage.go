package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/jobdeck/jobdeck/internal/notifier/domain"
)

// Storage handles all database operations for the notifier
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// GetApplicationDigest loads an application with its job and users
func (s *Storage) GetApplicationDigest(ctx context.Context, applicationID string) (*domain.ApplicationDigest, error) {
	query := `
		SELECT
			a.application_id,
			a.job_id,
			j.title AS job_title,
			j.company,
			applicant.name AS applicant_name,
			j.posted_by AS poster_id
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN users applicant ON applicant.user_id = a.user_id
		WHERE a.application_id = $1
	`

	var digest domain.ApplicationDigest
	err := s.db.GetContext(ctx, &digest, query, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application digest: %w", err)
	}

	return &digest, nil
}

// GetJobDigest loads the slice of a job needed for a notification
func (s *Storage) GetJobDigest(ctx context.Context, jobID string) (*domain.JobDigest, error) {
	query := `
		SELECT job_id, title, company, posted_by AS poster_id
		FROM jobs
		WHERE job_id = $1
	`

	var digest domain.JobDigest
	err := s.db.GetContext(ctx, &digest, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job digest: %w", err)
	}

	return &digest, nil
}

// InsertNotification records a notification. Redelivered events hit the
// (kind, source_id) unique constraint and are silently absorbed.
func (s *Storage) InsertNotification(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (
			notification_id, recipient_id, kind, source_id, message, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (kind, source_id) DO NOTHING
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		n.NotificationID,
		n.RecipientID,
		n.Kind,
		n.SourceID,
		n.Message,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		s.logger.Debug("Notification already recorded, skipping",
			slog.String("kind", n.Kind),
			slog.String("source_id", n.SourceID),
		)
	}

	return nil
}
