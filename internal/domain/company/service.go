package company

import (
	"context"
)

type CompanyService interface {
	// Create registers the recruiter's company. One company per recruiter;
	// the company starts in pending status and must clear moderation before
	// any job it owns can go live.
	Create(ctx context.Context, recruiterID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetMine(ctx context.Context, recruiterID string) (CompanyResponse, error)
	// UpdateDocuments replaces verification documents and sends the company
	// back through moderation. A logo-only change skips re-moderation.
	UpdateDocuments(ctx context.Context, recruiterID string, req UploadDocumentsRequest) (CompanyResponse, error)
	Delete(ctx context.Context, recruiterID string) error
}
