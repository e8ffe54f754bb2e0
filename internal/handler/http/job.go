package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPublic(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Unsave(w http.ResponseWriter, r *http.Request)
	ListSaved(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// Create implements JobHandler.
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	jobResp, err := h.jobService.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Create job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created", jobResp)
}

// Get implements JobHandler.
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	jobResp, err := h.jobService.Get(r.Context(), chi.URLParam(r, "jobID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobResp)
}

// ListPublic implements JobHandler. Open jobs only; supports category,
// subcategory, location, salary_min, limit and offset query params.
func (h *JobHandlerImpl) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := job.PublicFilter{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Location:    q.Get("location"),
	}
	if s := q.Get("salary_min"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			filter.SalaryMin = &v
		}
	}
	if s := q.Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Limit = v
		}
	}
	if s := q.Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Offset = v
		}
	}

	jobs, err := h.jobService.ListPublic(r.Context(), filter)
	if err != nil {
		slog.Error("ListPublic jobs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// ListMine implements JobHandler.
func (h *JobHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListMine(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("ListMine jobs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// Close implements JobHandler.
func (h *JobHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Close(r.Context(), middleware.UserID(r), chi.URLParam(r, "jobID")); err != nil {
		slog.Error("Close job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job closed", nil)
}

// Delete implements JobHandler.
func (h *JobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), middleware.UserID(r), chi.URLParam(r, "jobID")); err != nil {
		slog.Error("Delete job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted", nil)
}

// Save implements JobHandler.
func (h *JobHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.SaveJob(r.Context(), middleware.UserID(r), chi.URLParam(r, "jobID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job saved", nil)
}

// Unsave implements JobHandler.
func (h *JobHandlerImpl) Unsave(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.UnsaveJob(r.Context(), middleware.UserID(r), chi.URLParam(r, "jobID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job removed from saved", nil)
}

// ListSaved implements JobHandler.
func (h *JobHandlerImpl) ListSaved(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListSaved(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}
