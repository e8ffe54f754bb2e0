package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/service/file"
)

const maxResumeSize = 5 << 20 // 5 MB

type ApplicationServiceImpl struct {
	db *database.DB
	application.ApplicationRepository
	job.JobRepository
	user.UserRepository
	fileService file.FileService
}

func NewApplicationService(
	db *database.DB,
	applicationRepository application.ApplicationRepository,
	jobRepository job.JobRepository,
	userRepository user.UserRepository,
	fileService file.FileService,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		db:                    db,
		ApplicationRepository: applicationRepository,
		JobRepository:         jobRepository,
		UserRepository:        userRepository,
		fileService:           fileService,
	}
}

// Apply implements application.ApplicationService. An attached resume is
// stored and queued for review first, but the application only goes through
// when the resume on file is already approved: a fresh upload starts at
// pending and cannot clear the gate in the same request.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, applicantID string, req application.ApplyRequest) (application.ApplicationResponse, error) {
	applicant, err := s.UserRepository.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.ApplicationResponse{}, user.ErrUserNotFound
		}
		return application.ApplicationResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !applicant.IsCandidate() {
		return application.ApplicationResponse{}, user.ErrCandidateRoleRequired
	}

	if req.ResumeFile != nil && req.ResumeHeader != nil {
		if req.ResumeHeader.Size > maxResumeSize {
			return application.ApplicationResponse{}, fmt.Errorf("resume file exceeds 5MB limit")
		}
		path, err := s.fileService.UploadResume(ctx, applicantID, req.ResumeFile, req.ResumeHeader.Filename)
		if err != nil {
			return application.ApplicationResponse{}, err
		}
		if err := s.UserRepository.UpdateResume(ctx, applicantID, path); err != nil {
			return application.ApplicationResponse{}, fmt.Errorf("failed to store resume path: %w", err)
		}
		// The new upload resets the review status
		applicant.ResumeStatus = user.ResumePending
	}

	if !applicant.CanApply() {
		return application.ApplicationResponse{}, application.ErrResumeNotApproved
	}

	jobData, err := s.JobRepository.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.ApplicationResponse{}, job.ErrJobNotFound
		}
		return application.ApplicationResponse{}, fmt.Errorf("failed to get job: %w", err)
	}
	if !jobData.IsOpen() {
		return application.ApplicationResponse{}, job.ErrJobNotOpen
	}

	// The unique (job_id, applicant_id) constraint resolves the race
	// between two concurrent applies; no pre-check needed.
	created, err := s.ApplicationRepository.Create(ctx, application.Application{
		JobID:       req.JobID,
		ApplicantID: applicantID,
		Status:      application.StatusApplied,
	})
	if err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return application.ApplicationResponse{}, application.ErrAlreadyApplied
		}
		return application.ApplicationResponse{}, fmt.Errorf("failed to create application: %w", err)
	}

	created.JobTitle = &jobData.Title
	return application.ToResponse(created), nil
}

// UpdateStatus implements application.ApplicationService. Only the employer
// owning the job may move the application, to any known stage.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, employerID, applicationID string, req application.UpdateStatusRequest) error {
	appData, err := s.ApplicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to get application: %w", err)
	}

	jobData, err := s.JobRepository.GetByID(ctx, appData.JobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if jobData.EmployerID != employerID {
		return job.ErrNotJobOwner
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, applicationID, application.Status(req.Status)); err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	return nil
}

// ListByJob implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListByJob(ctx context.Context, employerID, jobID string) ([]application.ApplicationResponse, error) {
	jobData, err := s.JobRepository.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, job.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if jobData.EmployerID != employerID {
		return nil, job.ErrNotJobOwner
	}

	apps, err := s.ApplicationRepository.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return application.ToResponseList(apps), nil
}

// ListMine implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListMine(ctx context.Context, applicantID string) ([]application.ApplicationResponse, error) {
	apps, err := s.ApplicationRepository.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return application.ToResponseList(apps), nil
}
