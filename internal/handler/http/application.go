package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListByJob(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationService: applicationService}
}

// Apply implements ApplicationHandler. The body is optional; a multipart
// form may carry a resume file to attach before applying.
func (h *ApplicationHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	req := application.ApplyRequest{
		JobID: chi.URLParam(r, "jobID"),
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}
		if file, header, err := r.FormFile("resume"); err == nil {
			defer file.Close()
			req.ResumeFile = file
			req.ResumeHeader = header
		}
	}

	applicationResp, err := h.applicationService.Apply(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", applicationResp)
}

// UpdateStatus implements ApplicationHandler.
func (h *ApplicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	err := h.applicationService.UpdateStatus(r.Context(), middleware.UserID(r), chi.URLParam(r, "applicationID"), req)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated", nil)
}

// ListByJob implements ApplicationHandler.
func (h *ApplicationHandlerImpl) ListByJob(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListByJob(r.Context(), middleware.UserID(r), chi.URLParam(r, "jobID"))
	if err != nil {
		slog.Error("ListByJob service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

// ListMine implements ApplicationHandler.
func (h *ApplicationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListMine(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("ListMine applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}
