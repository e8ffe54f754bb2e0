package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type JobServiceImpl struct {
	db *database.DB
	job.JobRepository
	savedJobRepo job.SavedJobRepository
	company.CompanyRepository
	user.UserRepository
	orderRepo payment.OrderRepository
	billing   config.BillingConfig
}

func NewJobService(
	db *database.DB,
	jobRepository job.JobRepository,
	savedJobRepository job.SavedJobRepository,
	companyRepository company.CompanyRepository,
	userRepository user.UserRepository,
	orderRepository payment.OrderRepository,
	billing config.BillingConfig,
) job.JobService {
	return &JobServiceImpl{
		db:                db,
		JobRepository:     jobRepository,
		savedJobRepo:      savedJobRepository,
		CompanyRepository: companyRepository,
		UserRepository:    userRepository,
		orderRepo:         orderRepository,
		billing:           billing,
	}
}

// Create implements job.JobService. Checks run in a fixed order so the
// client always learns the first unmet requirement: active account, then
// company registered, then company approved, then the posting fee.
func (s *JobServiceImpl) Create(ctx context.Context, actorID string, req job.CreateJobRequest) (job.JobResponse, error) {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobResponse{}, user.ErrUserNotFound
		}
		return job.JobResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	var deadline *time.Time
	if req.ApplicationDeadline != nil && *req.ApplicationDeadline != "" {
		d, err := time.Parse("2006-01-02", *req.ApplicationDeadline)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("invalid application_deadline: %w", err)
		}
		deadline = &d
	}

	newJob := job.Job{
		EmployerID:          actor.ID,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		ApplicationDeadline: deadline,
	}

	// Admin postings skip the employer checks and go live without review.
	if actor.IsAdmin() {
		newJob.Status = job.StatusOpen
		created, err := s.JobRepository.Create(ctx, newJob)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("failed to create job: %w", err)
		}
		return job.ToResponse(created), nil
	}

	if !actor.IsEmployer() {
		return job.JobResponse{}, user.ErrEmployerRoleRequired
	}
	if actor.AccountStatus == user.AccountBlocked {
		return job.JobResponse{}, user.ErrAccountBlocked
	}
	if !actor.IsActive() {
		return job.JobResponse{}, auth.ErrAccountNotVerified
	}

	companyData, err := s.CompanyRepository.GetByRecruiterID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobResponse{}, company.ErrCompanyMissing
		}
		return job.JobResponse{}, fmt.Errorf("failed to get company: %w", err)
	}
	if !companyData.IsApproved() {
		return job.JobResponse{}, company.ErrCompanyNotApproved
	}

	// A subscribed company posts without per-job fees.
	if s.billing.JobPostFee > 0 && !companyData.HasActivePlan() {
		consumed, err := s.orderRepo.ConsumePaidOrder(ctx, actor.ID, payment.PurposeJobPost)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("failed to redeem posting fee: %w", err)
		}
		if !consumed {
			return job.JobResponse{}, job.ErrPaymentRequired
		}
	}

	newJob.CompanyID = &companyData.ID
	newJob.Status = job.StatusPending

	created, err := s.JobRepository.Create(ctx, newJob)
	if err != nil {
		return job.JobResponse{}, fmt.Errorf("failed to create job: %w", err)
	}

	created.CompanyName = &companyData.Name
	created.CompanyLogo = companyData.LogoPath
	return job.ToResponse(created), nil
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, id string) (job.JobResponse, error) {
	jobData, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobResponse{}, job.ErrJobNotFound
		}
		return job.JobResponse{}, fmt.Errorf("failed to get job: %w", err)
	}

	return job.ToResponse(jobData), nil
}

// ListPublic implements job.JobService. Only open jobs are visible.
func (s *JobServiceImpl) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.JobResponse, error) {
	jobs, err := s.JobRepository.ListPublic(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return job.ToResponseList(jobs), nil
}

// ListMine implements job.JobService.
func (s *JobServiceImpl) ListMine(ctx context.Context, employerID string) ([]job.JobResponse, error) {
	jobs, err := s.JobRepository.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return job.ToResponseList(jobs), nil
}

// Close implements job.JobService.
func (s *JobServiceImpl) Close(ctx context.Context, actorID string, jobID string) error {
	jobData, err := s.authorizeOwnerOrAdmin(ctx, actorID, jobID)
	if err != nil {
		return err
	}

	if jobData.Status != job.StatusOpen {
		return job.ErrJobNotOpen
	}

	if err := s.JobRepository.UpdateStatus(ctx, jobID, job.StatusClosed); err != nil {
		return fmt.Errorf("failed to close job: %w", err)
	}

	return nil
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, actorID string, jobID string) error {
	if _, err := s.authorizeOwnerOrAdmin(ctx, actorID, jobID); err != nil {
		return err
	}

	if err := s.JobRepository.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}

func (s *JobServiceImpl) authorizeOwnerOrAdmin(ctx context.Context, actorID, jobID string) (job.Job, error) {
	jobData, err := s.JobRepository.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	if jobData.EmployerID == actorID {
		return jobData, nil
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotJobOwner
		}
		return job.Job{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !actor.IsAdmin() {
		return job.Job{}, job.ErrNotJobOwner
	}

	return jobData, nil
}

// SaveJob implements job.JobService. Saving is idempotent.
func (s *JobServiceImpl) SaveJob(ctx context.Context, userID, jobID string) error {
	jobData, err := s.JobRepository.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.ErrJobNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	if !jobData.IsOpen() {
		return job.ErrJobNotOpen
	}

	if err := s.savedJobRepo.Save(ctx, userID, jobID); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return nil
}

// UnsaveJob implements job.JobService.
func (s *JobServiceImpl) UnsaveJob(ctx context.Context, userID, jobID string) error {
	if err := s.savedJobRepo.Unsave(ctx, userID, jobID); err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	return nil
}

// ListSaved implements job.JobService.
func (s *JobServiceImpl) ListSaved(ctx context.Context, userID string) ([]job.JobResponse, error) {
	jobs, err := s.savedJobRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}

	return job.ToResponseList(jobs), nil
}
