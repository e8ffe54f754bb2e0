package application

import (
	"context"
	"mime/multipart"
)

// ApplyRequest carries an application to an open job. A resume file may be
// attached; it is stored and queued for review, but the application itself
// still requires an already-approved resume.
type ApplyRequest struct {
	JobID string `json:"job_id"`

	ResumeFile   multipart.File        `json:"-"`
	ResumeHeader *multipart.FileHeader `json:"-"`
}

type ApplicationService interface {
	Apply(ctx context.Context, applicantID string, req ApplyRequest) (ApplicationResponse, error)
	// UpdateStatus lets the employer owning the job move the application to
	// any known stage, forward or backward.
	UpdateStatus(ctx context.Context, employerID, applicationID string, req UpdateStatusRequest) error
	ListByJob(ctx context.Context, employerID, jobID string) ([]ApplicationResponse, error)
	ListMine(ctx context.Context, applicantID string) ([]ApplicationResponse, error)
}
