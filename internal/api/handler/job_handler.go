package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/dto"
	"github.com/jobdeck/jobdeck/internal/api/model"
)

// PostJob handles POST /api/v1/jobs
// Creates a job posting on behalf of the authenticated caller
func (h *JobHandler) PostJob(c *gin.Context) {
	var req dto.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	input := &domain.JobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Salary:      req.Salary,
	}

	job, err := h.jobs.PostJob(c.Request.Context(), IdentityFrom(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toJobDTO(job))
}

// BrowseJobs handles GET /api/v1/jobs
// Searches job postings; anonymous browsing is permitted
func (h *JobHandler) BrowseJobs(c *gin.Context) {
	var req dto.BrowseJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter := domain.SearchFilter{
		Text:     req.Query,
		Type:     req.Type,
		Location: req.Location,
	}

	jobs, err := h.jobs.BrowseJobs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.BrowseJobsResponse{Jobs: make([]dto.JobDTO, len(jobs))}
	for i := range jobs {
		resp.Jobs[i] = toJobDTO(&jobs[i])
	}

	c.JSON(http.StatusOK, resp)
}

// GetJob handles GET /api/v1/jobs/:job_id
// Retrieves a single job posting
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_id must be a valid UUID",
		})
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toJobDTO(job))
}

// ListPostedJobs handles GET /api/v1/me/jobs
// Lists the caller's postings with application counts
func (h *JobHandler) ListPostedJobs(c *gin.Context) {
	jobs, err := h.jobs.ListPostedJobs(c.Request.Context(), IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.ListPostedJobsResponse{Jobs: make([]dto.PostedJobDTO, len(jobs))}
	for i := range jobs {
		resp.Jobs[i] = dto.PostedJobDTO{
			JobDTO:           toJobDTO(&jobs[i].Job),
			ApplicationCount: jobs[i].ApplicationCount,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func toJobDTO(job *model.Job) dto.JobDTO {
	out := dto.JobDTO{
		JobID:       job.JobID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Type:        job.JobType,
		Description: job.Description,
		PostedAt:    job.PostedAt.Format(time.RFC3339),
		PostedBy:    job.PostedBy,
		PosterName:  job.PosterName,
	}
	if job.Salary.Valid {
		out.Salary = job.Salary.String
	}
	return out
}
