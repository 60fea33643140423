package dto

type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Salary      string `json:"salary"`
}

type BrowseJobsRequest struct {
	Query    string `form:"q"`
	Type     string `form:"type"`
	Location string `form:"location"`
}

type JobDTO struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Salary      string `json:"salary,omitempty"`
	PostedAt    string `json:"posted_at"`
	PostedBy    string `json:"posted_by"`
	PosterName  string `json:"poster_name,omitempty"`
}

type BrowseJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}

type PostedJobDTO struct {
	JobDTO
	ApplicationCount int `json:"application_count"`
}

type ListPostedJobsResponse struct {
	Jobs []PostedJobDTO `json:"jobs"`
}
