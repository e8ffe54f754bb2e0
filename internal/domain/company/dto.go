package company

import (
	"mime/multipart"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

// CreateCompanyRequest carries the multipart form of employer onboarding.
// Business and ID proofs are required; the logo is optional.
type CreateCompanyRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`

	BusinessProofFile   multipart.File        `json:"-"`
	BusinessProofHeader *multipart.FileHeader `json:"-"`
	IDProofFile         multipart.File        `json:"-"`
	IDProofHeader       *multipart.FileHeader `json:"-"`
	LogoFile            multipart.File        `json:"-"`
	LogoHeader          *multipart.FileHeader `json:"-"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.BusinessProofFile == nil || r.BusinessProofHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "business_proof",
			Message: "business_proof document is required",
		})
	}
	if r.IDProofFile == nil || r.IDProofHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "id_proof",
			Message: "id_proof document is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDocumentsRequest struct {
	BusinessProofPath *string
	IDProofPath       *string
	LogoPath          *string
}

// UploadDocumentsRequest carries replacement verification documents. At
// least one file must be present.
type UploadDocumentsRequest struct {
	BusinessProofFile   multipart.File        `json:"-"`
	BusinessProofHeader *multipart.FileHeader `json:"-"`
	IDProofFile         multipart.File        `json:"-"`
	IDProofHeader       *multipart.FileHeader `json:"-"`
	LogoFile            multipart.File        `json:"-"`
	LogoHeader          *multipart.FileHeader `json:"-"`
}

func (r *UploadDocumentsRequest) Validate() error {
	if r.BusinessProofFile == nil && r.IDProofFile == nil && r.LogoFile == nil {
		return validator.ValidationErrors{{
			Field:   "documents",
			Message: "at least one document must be provided",
		}}
	}
	return nil
}

type CompanyResponse struct {
	ID            string     `json:"id"`
	RecruiterID   string     `json:"recruiter_id"`
	Name          string     `json:"name"`
	Address       *string    `json:"address,omitempty"`
	LogoPath      *string    `json:"logo_path,omitempty"`
	Status        Status     `json:"status"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		RecruiterID:   c.RecruiterID,
		Name:          c.Name,
		Address:       c.Address,
		LogoPath:      c.LogoPath,
		Status:        c.Status,
		PlanExpiresAt: c.PlanExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}
