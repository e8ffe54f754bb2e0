package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/moderation"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountNotVerified, http.StatusForbidden},
		{auth.ErrInvalidOTP, http.StatusBadRequest},
		{auth.ErrTooManyOTPAttempts, http.StatusForbidden},
		{auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{user.ErrUserNotFound, http.StatusNotFound},
		{user.ErrUserEmailExists, http.StatusConflict},
		{user.ErrAccountBlocked, http.StatusForbidden},
		{user.ErrResumeMissing, http.StatusBadRequest},
		{company.ErrCompanyExists, http.StatusConflict},
		{company.ErrCompanyMissing, http.StatusForbidden},
		{company.ErrCompanyNotApproved, http.StatusForbidden},
		{job.ErrJobNotFound, http.StatusNotFound},
		{job.ErrJobNotOpen, http.StatusConflict},
		{job.ErrNotJobOwner, http.StatusForbidden},
		{job.ErrPaymentRequired, http.StatusPaymentRequired},
		{application.ErrAlreadyApplied, http.StatusConflict},
		{application.ErrResumeNotApproved, http.StatusForbidden},
		{moderation.ErrUnknownEntityType, http.StatusBadRequest},
		{moderation.ErrInvalidTransition, http.StatusConflict},
		{payment.ErrOrderNotFound, http.StatusNotFound},
		{payment.ErrInvalidWebhookToken, http.StatusUnauthorized},
		{errors.New("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)
			assert.Equal(t, tt.code, w.Code)

			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleErrorUnwrapsWrappedSentinels(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("creating job: %w", job.ErrPaymentRequired))
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	w := httptest.NewRecorder()
	HandleError(w, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "email is required", body.Error.Details["email"])
}
