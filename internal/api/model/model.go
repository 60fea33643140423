package model

import (
	"database/sql"
	"time"
)

type User struct {
	UserID            string    `db:"user_id"`
	Name              string    `db:"name"`
	Provider          string    `db:"provider"`
	ProviderAccountID string    `db:"provider_account_id"`
	CreatedAt         time.Time `db:"created_at"`
}

type Job struct {
	JobID       string         `db:"job_id"`
	Title       string         `db:"title"`
	Company     string         `db:"company"`
	Location    string         `db:"location"`
	JobType     string         `db:"job_type"`
	Description string         `db:"description"`
	Salary      sql.NullString `db:"salary"`
	PostedAt    time.Time      `db:"posted_at"`
	PostedBy    string         `db:"posted_by"`
	PosterName  string         `db:"poster_name"`
}

// PostedJob is a job on the poster's dashboard, annotated with how many
// applications it has received.
type PostedJob struct {
	Job
	ApplicationCount int `db:"application_count"`
}

type Application struct {
	ApplicationID string    `db:"application_id"`
	JobID         string    `db:"job_id"`
	UserID        string    `db:"user_id"`
	Status        string    `db:"status"`
	AppliedAt     time.Time `db:"applied_at"`
}

// UserApplication is an application on the applicant's dashboard, annotated
// with the job it targets.
type UserApplication struct {
	ApplicationID string         `db:"application_id"`
	Status        string         `db:"status"`
	AppliedAt     time.Time      `db:"applied_at"`
	JobID         string         `db:"job_id"`
	Title         string         `db:"title"`
	Company       string         `db:"company"`
	Location      string         `db:"location"`
	JobType       string         `db:"job_type"`
	Salary        sql.NullString `db:"salary"`
	PosterName    string         `db:"poster_name"`
}
