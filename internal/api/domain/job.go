package domain

import (
	"fmt"
	"strings"
)

// Job type constants
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// Application status constants
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusAccepted = "ACCEPTED"
	ApplicationStatusRejected = "REJECTED"
)

var jobTypes = map[string]struct{}{
	JobTypeFullTime:   {},
	JobTypePartTime:   {},
	JobTypeContract:   {},
	JobTypeInternship: {},
}

// ValidJobType reports whether t is one of the four job type constants.
func ValidJobType(t string) bool {
	_, ok := jobTypes[t]
	return ok
}

// Identity is a verified (user id, display name) pair. A nil *Identity
// means the caller is anonymous.
type Identity struct {
	UserID string
	Name   string
}

// ProviderProfile is the verified profile handed over by the identity
// provider callback after a successful sign-in.
type ProviderProfile struct {
	Provider          string
	ProviderAccountID string
	Name              string
}

// JobInput holds the caller-supplied fields of a new job posting.
type JobInput struct {
	Title       string
	Company     string
	Location    string
	Type        string
	Description string
	Salary      string // optional
}

// Validate checks that all required fields are present and the job type
// is one of the enumerated values.
func (in *JobInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"company", in.Company},
		{"location", in.Location},
		{"type", in.Type},
		{"description", in.Description},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidJobInput, f.name)
		}
	}

	if !ValidJobType(in.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidJobType, in.Type)
	}

	return nil
}

// SearchFilter narrows a job search. Zero-value fields impose no
// constraint; set fields combine with AND.
type SearchFilter struct {
	Text     string // case-insensitive match against title, company, or description
	Type     string // exact match
	Location string // case-insensitive substring match
}
