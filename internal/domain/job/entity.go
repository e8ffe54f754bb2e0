package job

import "time"

// Status of a posting. Moderation moves pending postings to open or
// rejected; closed is a manual owner/admin action outside moderation.
//
//	PENDING ──► OPEN ──► CLOSED
//	    │
//	    └─────► REJECTED
//
// Admin-authored jobs skip PENDING and start OPEN.
type Status string

const (
	StatusPending  Status = "pending"
	StatusOpen     Status = "open"
	StatusRejected Status = "rejected"
	StatusClosed   Status = "closed"
)

type Job struct {
	ID                  string
	EmployerID          string
	CompanyID           *string
	Title               string
	Description         string
	Category            string
	Subcategory         *string
	Location            *string
	SalaryMin           *int64
	SalaryMax           *int64
	Status              Status
	ApplicationDeadline *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO / Join
	CompanyName *string
	CompanyLogo *string
}

// IsOpen checks if the job is publicly visible and accepting applications
func (j *Job) IsOpen() bool {
	return j.Status == StatusOpen
}
