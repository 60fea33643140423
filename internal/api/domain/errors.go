package domain

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requires a signed-in user
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken is returned when a session token is malformed, expired, or has a bad signature
	ErrInvalidToken = errors.New("invalid session token")

	// ErrInvalidJobInput is returned when a required job field is missing or blank
	ErrInvalidJobInput = errors.New("invalid job input")

	// ErrInvalidJobType is returned when the job type is not one of the enumerated values
	ErrInvalidJobType = errors.New("invalid job type")

	// ErrInvalidProfile is returned when the identity provider profile is incomplete
	ErrInvalidProfile = errors.New("invalid provider profile")

	// ErrJobNotFound is returned when the referenced job does not exist
	ErrJobNotFound = errors.New("job not found")

	// ErrUserNotFound is returned when the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateApplication is returned when a user has already applied to a job
	ErrDuplicateApplication = errors.New("application already exists for this job")
)
