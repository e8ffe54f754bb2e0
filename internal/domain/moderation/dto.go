package moderation

import (
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type DecideRequest struct {
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	TargetStatus string `json:"target_status"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseEntityType(r.EntityType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "entity_type",
			Message: "entity_type must be resume, company, or job",
		})
	}
	if validator.IsEmpty(r.EntityID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entity_id",
			Message: "entity_id is required",
		})
	}
	if validator.IsEmpty(r.TargetStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_status",
			Message: "target_status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PendingQueue is the admin dashboard view of entities awaiting review.
type PendingQueue struct {
	Resumes   []user.UserResponse       `json:"resumes,omitempty"`
	Companies []company.CompanyResponse `json:"companies,omitempty"`
	Jobs      []job.JobResponse         `json:"jobs,omitempty"`
}
