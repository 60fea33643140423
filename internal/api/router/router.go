package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())
	r.Use(IdentityMiddleware(deps.Verifier, deps.Logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "jobboard-api-service",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)
	sessionHandler := handler.NewSessionHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// POST /api/v1/auth/session - Exchange a provider profile for a session token
		v1.POST("/auth/session", sessionHandler.CreateSession)

		jobs := v1.Group("/jobs")
		{
			// POST /api/v1/jobs - Post a new job (authenticated)
			jobs.POST("", jobHandler.PostJob)

			// GET /api/v1/jobs - Browse jobs with filters (anonymous allowed)
			jobs.GET("", jobHandler.BrowseJobs)

			// GET /api/v1/jobs/:job_id - Job details (anonymous allowed)
			jobs.GET("/:job_id", jobHandler.GetJob)

			// POST /api/v1/jobs/:job_id/apply - Apply to a job (authenticated)
			jobs.POST("/:job_id/apply", applicationHandler.Apply)
		}

		me := v1.Group("/me")
		{
			// GET /api/v1/me/jobs - Caller's postings with application counts
			me.GET("/jobs", jobHandler.ListPostedJobs)

			// GET /api/v1/me/applications - Caller's applications
			me.GET("/applications", applicationHandler.ListApplications)
		}
	}

	return r
}
