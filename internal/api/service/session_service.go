package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobdeck/jobdeck/internal/api/domain"
)

// SessionService turns a provider-verified profile into a local user and
// a signed session token. The OAuth handshake itself happens upstream;
// this service only trusts its outcome.
type SessionService struct {
	users  UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

// NewSessionService creates a new SessionService instance
func NewSessionService(users UserStore, tokens TokenIssuer, logger *slog.Logger) *SessionService {
	return &SessionService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// EstablishSession upserts the local mirror of a signed-in user and
// returns a session token for it.
func (s *SessionService) EstablishSession(ctx context.Context, profile *domain.ProviderProfile) (string, *domain.Identity, error) {
	if strings.TrimSpace(profile.Provider) == "" ||
		strings.TrimSpace(profile.ProviderAccountID) == "" ||
		strings.TrimSpace(profile.Name) == "" {
		return "", nil, fmt.Errorf("%w: provider, provider account id, and name are required", domain.ErrInvalidProfile)
	}

	user, err := s.users.UpsertUser(ctx, profile)
	if err != nil {
		return "", nil, fmt.Errorf("failed to establish session: %w", err)
	}

	identity := &domain.Identity{
		UserID: user.UserID,
		Name:   user.Name,
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", nil, fmt.Errorf("failed to establish session: %w", err)
	}

	s.logger.Info("Session established",
		slog.String("user_id", user.UserID),
		slog.String("provider", user.Provider),
	)

	return token, identity, nil
}
