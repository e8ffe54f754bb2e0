package application

import "time"

// Status is the employer-driven progression of an application. Unlike the
// moderation states it is deliberately free-form: employers may move an
// application in any direction at any time.
type Status string

const (
	StatusApplied     Status = "Applied"
	StatusViewed      Status = "Viewed"
	StatusShortlisted Status = "Shortlisted"
	StatusInterview   Status = "Interview"
	StatusHired       Status = "Hired"
	StatusRejected    Status = "Rejected"
)

// KnownStatuses lists every accepted status value.
var KnownStatuses = []string{
	string(StatusApplied),
	string(StatusViewed),
	string(StatusShortlisted),
	string(StatusInterview),
	string(StatusHired),
	string(StatusRejected),
}

type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	JobTitle      *string
	ApplicantName *string
	ResumePath    *string
}
