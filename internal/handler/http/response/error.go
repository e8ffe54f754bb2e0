package response

import (
	"errors"
	"net/http"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/moderation"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountNotVerified):
		Forbidden(w, "Account not verified, complete OTP verification first")
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "Invalid or expired OTP", nil)
	case errors.Is(err, auth.ErrTooManyOTPAttempts):
		Forbidden(w, "Too many OTP attempts, request a new code")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAccountBlocked):
		Forbidden(w, "Account is blocked")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmployerRoleRequired):
		Forbidden(w, "Employer role required")
	case errors.Is(err, user.ErrCandidateRoleRequired):
		Forbidden(w, "Candidate role required")
	case errors.Is(err, user.ErrResumeMissing):
		BadRequest(w, "No resume uploaded", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyExists):
		Conflict(w, "Recruiter already has a company")
	case errors.Is(err, company.ErrCompanyMissing):
		Forbidden(w, "Register a company first")
	case errors.Is(err, company.ErrCompanyNotApproved):
		Forbidden(w, "Company is not approved yet")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobNotOpen):
		Conflict(w, "Job is not open")
	case errors.Is(err, job.ErrNotJobOwner):
		Forbidden(w, "Not the owner of this job")
	case errors.Is(err, job.ErrPaymentRequired):
		PaymentRequired(w, "Job posting fee required")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrAlreadyApplied):
		Conflict(w, "Already applied to this job")
	case errors.Is(err, application.ErrResumeNotApproved):
		Forbidden(w, "Resume must be approved before applying")
	case errors.Is(err, application.ErrUnknownStatus):
		BadRequest(w, "Unknown application status", nil)

	// Moderation domain errors
	case errors.Is(err, moderation.ErrUnknownEntityType):
		BadRequest(w, "Unknown entity type", nil)
	case errors.Is(err, moderation.ErrUnknownStatus):
		BadRequest(w, "Unknown status for entity type", nil)
	case errors.Is(err, moderation.ErrInvalidTransition):
		Conflict(w, "Status transition not allowed")

	// Payment domain errors
	case errors.Is(err, payment.ErrOrderNotFound):
		NotFound(w, "Payment order not found")
	case errors.Is(err, payment.ErrInvalidWebhookToken):
		Unauthorized(w, "Invalid webhook token")
	case errors.Is(err, payment.ErrOrderAlreadyPaid):
		Conflict(w, "Payment order already paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
