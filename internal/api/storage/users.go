package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// UpsertUser mirrors a provider-verified user locally. On first sign-in a
// row is created with a fresh id; on later sign-ins the existing row is
// kept and only the display name is refreshed.
func (s *Storage) UpsertUser(ctx context.Context, profile *domain.ProviderProfile) (*model.User, error) {
	query := `
		INSERT INTO users (
			user_id, name, provider, provider_account_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
		ON CONFLICT (provider, provider_account_id)
		DO UPDATE SET name = EXCLUDED.name
		RETURNING user_id, name, provider, provider_account_id, created_at
	`

	var user model.User
	err := s.db.GetContext(
		ctx,
		&user,
		query,
		uuid.New().String(),
		profile.Name,
		profile.Provider,
		profile.ProviderAccountID,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	s.logger.Debug("User upserted",
		slog.String("user_id", user.UserID),
		slog.String("provider", user.Provider),
	)

	return &user, nil
}

// GetUserByID retrieves a user by its local id
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	query := `
		SELECT user_id, name, provider, provider_account_id, created_at
		FROM users
		WHERE user_id = $1
	`

	var user model.User
	err := s.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
