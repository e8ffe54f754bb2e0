package job

import (
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type CreateJobRequest struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	Subcategory         *string `json:"subcategory"`
	Location            *string `json:"location"`
	SalaryMin           *int64  `json:"salary_min"`
	SalaryMax           *int64  `json:"salary_max"`
	ApplicationDeadline *string `json:"application_deadline"` // YYYY-MM-DD
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if r.SalaryMin != nil && *r.SalaryMin < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_min",
			Message: "salary_min must not be negative",
		})
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMax < *r.SalaryMin {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_max",
			Message: "salary_max must not be less than salary_min",
		})
	}
	if r.ApplicationDeadline != nil {
		if _, ok := validator.IsValidDate(*r.ApplicationDeadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "application_deadline",
				Message: "application_deadline must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublicFilter narrows the public job search. Zero values mean "any".
type PublicFilter struct {
	Category    string
	Subcategory string
	Location    string
	SalaryMin   *int64
	Limit       int
	Offset      int
}

type JobResponse struct {
	ID                  string     `json:"id"`
	EmployerID          string     `json:"employer_id"`
	CompanyID           *string    `json:"company_id,omitempty"`
	CompanyName         *string    `json:"company_name,omitempty"`
	CompanyLogo         *string    `json:"company_logo,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Subcategory         *string    `json:"subcategory,omitempty"`
	Location            *string    `json:"location,omitempty"`
	SalaryMin           *int64     `json:"salary_min,omitempty"`
	SalaryMax           *int64     `json:"salary_max,omitempty"`
	Status              Status     `json:"status"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func ToResponse(j Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		EmployerID:          j.EmployerID,
		CompanyID:           j.CompanyID,
		CompanyName:         j.CompanyName,
		CompanyLogo:         j.CompanyLogo,
		Title:               j.Title,
		Description:         j.Description,
		Category:            j.Category,
		Subcategory:         j.Subcategory,
		Location:            j.Location,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		Status:              j.Status,
		ApplicationDeadline: j.ApplicationDeadline,
		CreatedAt:           j.CreatedAt,
	}
}

func ToResponseList(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToResponse(j))
	}
	return out
}
