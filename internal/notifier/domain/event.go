package domain

import "time"

// Event names consumed from the job-board exchange
const (
	EventJobPosted           = "job.posted"
	EventApplicationReceived = "application.received"
)

// EventMessage is a decoded event delivery from RabbitMQ
type EventMessage struct {
	Event         string `json:"event"`
	JobID         string `json:"job_id"`
	ApplicationID string `json:"application_id,omitempty"`
	DeliveryTag   uint64 `json:"-"`
}

// ApplicationDigest joins an application with its job and the two users
// involved, enough to phrase a notification.
type ApplicationDigest struct {
	ApplicationID string `db:"application_id"`
	JobID         string `db:"job_id"`
	JobTitle      string `db:"job_title"`
	Company       string `db:"company"`
	ApplicantName string `db:"applicant_name"`
	PosterID      string `db:"poster_id"`
}

// JobDigest is the slice of a job needed to phrase a notification
type JobDigest struct {
	JobID    string `db:"job_id"`
	Title    string `db:"title"`
	Company  string `db:"company"`
	PosterID string `db:"poster_id"`
}

// Notification is a persisted message for a user. The (kind, source_id)
// pair is unique so redelivered events collapse into one row.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	RecipientID    string    `db:"recipient_id"`
	Kind           string    `db:"kind"`
	SourceID       string    `db:"source_id"`
	Message        string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
}
