package company

import (
	"context"
	"time"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByRecruiterID(ctx context.Context, recruiterID string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByRecruiterID(ctx context.Context, recruiterID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// UpdateDocuments replaces the provided documents. Swapping a proof
	// document resets status to pending so the company goes back through
	// moderation; a logo-only change does not.
	UpdateDocuments(ctx context.Context, id string, req UpdateDocumentsRequest) error
	UpdatePlanExpiry(ctx context.Context, id string, expiresAt time.Time) error
	ListByStatus(ctx context.Context, status Status) ([]Company, error)
	Delete(ctx context.Context, id string) error
}
