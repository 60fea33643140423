package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/service"
)

// IdentityContextKey is the gin context key under which the identity
// middleware stores the resolved *domain.Identity.
const IdentityContextKey = "identity"

// IdentityResolver resolves a bearer credential into an identity.
// The auth token manager satisfies it.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*domain.Identity, error)
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger       *slog.Logger
	Verifier     IdentityResolver
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Sessions     *service.SessionService
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   *service.JobService
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	logger       *slog.Logger
	applications *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger:       deps.Logger,
		applications: deps.Applications,
	}
}

// SessionHandler handles session establishment
type SessionHandler struct {
	logger   *slog.Logger
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(deps *Dependencies) *SessionHandler {
	return &SessionHandler{
		logger:   deps.Logger,
		sessions: deps.Sessions,
	}
}

// IdentityFrom returns the identity stored by the middleware, or nil for
// an anonymous caller.
func IdentityFrom(c *gin.Context) *domain.Identity {
	v, ok := c.Get(IdentityContextKey)
	if !ok {
		return nil
	}

	identity, ok := v.(*domain.Identity)
	if !ok {
		return nil
	}

	return identity
}

// respondError maps a domain error to an HTTP status. Anything outside
// the taxonomy is a 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidJobInput),
		errors.Is(err, domain.ErrInvalidJobType),
		errors.Is(err, domain.ErrInvalidProfile):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrJobNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateApplication):
		status = http.StatusConflict
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		return
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
