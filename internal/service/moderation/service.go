package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/moderation"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type ModerationServiceImpl struct {
	db *database.DB
	user.UserRepository
	company.CompanyRepository
	job.JobRepository
	strict bool
}

func NewModerationService(
	db *database.DB,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	jobRepository job.JobRepository,
	cfg config.ModerationConfig,
) moderation.ModerationService {
	return &ModerationServiceImpl{
		db:                db,
		UserRepository:    userRepository,
		CompanyRepository: companyRepository,
		JobRepository:     jobRepository,
		strict:            cfg.Strict,
	}
}

// Decide implements moderation.ModerationService. The requested status must
// be known for the entity type; in strict mode it must also be a legal
// transition from the entity's current state. Two moderators deciding the
// same entity resolve last-write-wins.
func (s *ModerationServiceImpl) Decide(ctx context.Context, req moderation.DecideRequest) error {
	entityType, err := moderation.ParseEntityType(req.EntityType)
	if err != nil {
		return err
	}

	if !moderation.IsKnownStatus(entityType, req.TargetStatus) {
		return fmt.Errorf("%w: %q for %s", moderation.ErrUnknownStatus, req.TargetStatus, entityType)
	}

	current, err := s.currentStatus(ctx, entityType, req.EntityID)
	if err != nil {
		return err
	}

	if s.strict && !moderation.IsTransitionAllowed(entityType, current, req.TargetStatus) {
		return fmt.Errorf("%w: %s %s -> %s", moderation.ErrInvalidTransition, entityType, current, req.TargetStatus)
	}

	return s.writeStatus(ctx, entityType, req.EntityID, req.TargetStatus)
}

func (s *ModerationServiceImpl) currentStatus(ctx context.Context, entityType moderation.EntityType, entityID string) (string, error) {
	switch entityType {
	case moderation.EntityResume:
		userData, err := s.UserRepository.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", user.ErrUserNotFound
			}
			return "", fmt.Errorf("failed to get user: %w", err)
		}
		if userData.ResumePath == nil {
			return "", user.ErrResumeMissing
		}
		return string(userData.ResumeStatus), nil

	case moderation.EntityCompany:
		companyData, err := s.CompanyRepository.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", company.ErrCompanyNotFound
			}
			return "", fmt.Errorf("failed to get company: %w", err)
		}
		return string(companyData.Status), nil

	case moderation.EntityJob:
		jobData, err := s.JobRepository.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", job.ErrJobNotFound
			}
			return "", fmt.Errorf("failed to get job: %w", err)
		}
		return string(jobData.Status), nil
	}

	return "", moderation.ErrUnknownEntityType
}

func (s *ModerationServiceImpl) writeStatus(ctx context.Context, entityType moderation.EntityType, entityID, status string) error {
	switch entityType {
	case moderation.EntityResume:
		return s.UserRepository.UpdateResumeStatus(ctx, entityID, user.ResumeStatus(status))
	case moderation.EntityCompany:
		return s.CompanyRepository.UpdateStatus(ctx, entityID, company.Status(status))
	case moderation.EntityJob:
		return s.JobRepository.UpdateStatus(ctx, entityID, job.Status(status))
	}
	return moderation.ErrUnknownEntityType
}

// ListPending implements moderation.ModerationService. An empty entity type
// returns all three review queues.
func (s *ModerationServiceImpl) ListPending(ctx context.Context, entityType moderation.EntityType) (moderation.PendingQueue, error) {
	var queue moderation.PendingQueue

	if entityType == "" || entityType == moderation.EntityResume {
		users, err := s.UserRepository.ListByResumeStatus(ctx, user.ResumePending)
		if err != nil {
			return moderation.PendingQueue{}, fmt.Errorf("failed to list pending resumes: %w", err)
		}
		for _, u := range users {
			// Candidates without an uploaded resume are not reviewable
			if u.ResumePath == nil {
				continue
			}
			queue.Resumes = append(queue.Resumes, user.ToResponse(u))
		}
	}

	if entityType == "" || entityType == moderation.EntityCompany {
		companies, err := s.CompanyRepository.ListByStatus(ctx, company.StatusPending)
		if err != nil {
			return moderation.PendingQueue{}, fmt.Errorf("failed to list pending companies: %w", err)
		}
		for _, c := range companies {
			queue.Companies = append(queue.Companies, company.ToResponse(c))
		}
	}

	if entityType == "" || entityType == moderation.EntityJob {
		jobs, err := s.JobRepository.ListByStatus(ctx, job.StatusPending)
		if err != nil {
			return moderation.PendingQueue{}, fmt.Errorf("failed to list pending jobs: %w", err)
		}
		queue.Jobs = job.ToResponseList(jobs)
	}

	return queue, nil
}
