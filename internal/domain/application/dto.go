package application

import (
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, KnownStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Applied, Viewed, Shortlisted, Interview, Hired, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	ApplicantID   string    `json:"applicant_id"`
	Status        Status    `json:"status"`
	JobTitle      *string   `json:"job_title,omitempty"`
	ApplicantName *string   `json:"applicant_name,omitempty"`
	ResumePath    *string   `json:"resume_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		ApplicantID:   a.ApplicantID,
		Status:        a.Status,
		JobTitle:      a.JobTitle,
		ApplicantName: a.ApplicantName,
		ResumePath:    a.ResumePath,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ToResponseList(apps []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, ToResponse(a))
	}
	return out
}
