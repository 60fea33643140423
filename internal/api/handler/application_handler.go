package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/api/dto"
)

// Apply handles POST /api/v1/jobs/:job_id/apply
// Submits an application for the authenticated caller
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), IdentityFrom(c), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplicationDTO{
		ApplicationID: app.ApplicationID,
		JobID:         app.JobID,
		UserID:        app.UserID,
		Status:        app.Status,
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
	})
}

// ListApplications handles GET /api/v1/me/applications
// Lists the caller's applications, each annotated with its job
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.applications.ListApplications(c.Request.Context(), IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.ListApplicationsResponse{
		Applications: make([]dto.UserApplicationDTO, len(apps)),
	}
	for i, app := range apps {
		out := dto.UserApplicationDTO{
			ApplicationID: app.ApplicationID,
			Status:        app.Status,
			AppliedAt:     app.AppliedAt.Format(time.RFC3339),
			JobID:         app.JobID,
			Title:         app.Title,
			Company:       app.Company,
			Location:      app.Location,
			Type:          app.JobType,
			PosterName:    app.PosterName,
		}
		if app.Salary.Valid {
			out.Salary = app.Salary.String
		}
		resp.Applications[i] = out
	}

	c.JSON(http.StatusOK, resp)
}
