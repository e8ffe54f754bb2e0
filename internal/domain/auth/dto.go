package auth

import (
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

func (r *RegisterRequest) Validate() error {
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

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Mobile
	if validator.IsEmpty(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile is required",
		})
	} else if !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid 10-digit mobile number",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.ConfirmPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password is required",
		})
	} else if r.ConfirmPassword != r.Password {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "password and confirm_password do not match",
		})
	}

	// Role: admins are seeded, never self-registered
	if !validator.IsInSlice(r.Role, []string{string(user.RoleCandidate), string(user.RoleEmployer)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be candidate or employer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VerifyOTPRequest struct {
	UserID string `json:"user_id"`
	OTP    string `json:"otp"`
}

func (r *VerifyOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if !validator.IsValidOTP(r.OTP) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp must be a 6-digit code",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type RegisterResponse struct {
	User user.UserResponse `json:"user"`
	// OTP delivery is asynchronous; the client polls verify-otp.
	OTPSent bool `json:"otp_sent"`
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"refresh_token"`
	RefreshTokenExpiresIn int64             `json:"refresh_token_expires_in"`
	User                  user.UserResponse `json:"user"`
}
