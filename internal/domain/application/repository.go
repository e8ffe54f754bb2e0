package application

import (
	"context"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (Application, error)
	// Create relies on the unique (job_id, applicant_id) constraint; a
	// duplicate insert surfaces as ErrAlreadyApplied.
	Create(ctx context.Context, newApplication Application) (Application, error)
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)
}
