package user

import (
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}
	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid 10-digit mobile number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse is the public view of a user, without credentials.
type UserResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Mobile        string        `json:"mobile"`
	Role          Role          `json:"role"`
	AccountStatus AccountStatus `json:"account_status"`
	ProfileStatus ProfileStatus `json:"profile_status"`
	ResumeStatus  ResumeStatus  `json:"resume_status"`
	ResumePath    *string       `json:"resume_path,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Mobile:        u.Mobile,
		Role:          u.Role,
		AccountStatus: u.AccountStatus,
		ProfileStatus: u.ProfileStatus,
		ResumeStatus:  u.ResumeStatus,
		ResumePath:    u.ResumePath,
		CreatedAt:     u.CreatedAt,
	}
}
