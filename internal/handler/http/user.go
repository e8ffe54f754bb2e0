package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

const maxUploadMemory = 10 << 20 // 10 MB

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteByID(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// GetProfile implements UserHandler.
func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.GetProfile(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements UserHandler.
func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", profile)
}

// UploadResume implements UserHandler. Expects multipart form with a
// "resume" file field.
func (h *UserHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "resume file is required", nil)
		return
	}
	defer file.Close()

	profile, err := h.userService.UploadResume(r.Context(), middleware.UserID(r), user.UploadResumeRequest{
		File:       file,
		FileHeader: header,
	})
	if err != nil {
		slog.Error("UploadResume service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resume uploaded and queued for review", profile)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), middleware.UserID(r)); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deleted", nil)
}

// DeleteByID implements UserHandler. Admin removal of any account; the
// account's company, jobs and applications cascade at the database level.
func (h *UserHandlerImpl) DeleteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		slog.Error("DeleteByID service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deleted", nil)
}
