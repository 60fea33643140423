package dto

type ApplicationDTO struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	AppliedAt     string `json:"applied_at"`
}

type UserApplicationDTO struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	AppliedAt     string `json:"applied_at"`
	JobID         string `json:"job_id"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	Type          string `json:"type"`
	Salary        string `json:"salary,omitempty"`
	PosterName    string `json:"poster_name,omitempty"`
}

type ListApplicationsResponse struct {
	Applications []UserApplicationDTO `json:"applications"`
}

type CreateSessionRequest struct {
	Provider          string `json:"provider" binding:"required"`
	ProviderAccountID string `json:"provider_account_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
}

type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
