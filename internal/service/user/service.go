package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/service/file"
)

const maxResumeSize = 5 << 20 // 5 MB

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	fileService file.FileService
}

func NewUserService(db *database.DB, userRepository user.UserRepository, fileService file.FileService) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		fileService:    fileService,
	}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.ToResponse(userData), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.UserRepository.UpdateProfile(ctx, userID, req); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to reload user: %w", err)
	}

	return user.ToResponse(updated), nil
}

// UploadResume implements user.UserService. The stored path replaces any
// previous resume and the review status resets to pending.
func (s *UserServiceImpl) UploadResume(ctx context.Context, userID string, req user.UploadResumeRequest) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !userData.IsCandidate() {
		return user.UserResponse{}, user.ErrCandidateRoleRequired
	}
	if req.File == nil || req.FileHeader == nil {
		return user.UserResponse{}, fmt.Errorf("resume file is required")
	}
	if req.FileHeader.Size > maxResumeSize {
		return user.UserResponse{}, fmt.Errorf("resume file exceeds 5MB limit")
	}

	path, err := s.fileService.UploadResume(ctx, userID, req.File, req.FileHeader.Filename)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.UpdateResume(ctx, userID, path); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to store resume path: %w", err)
	}

	updated, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to reload user: %w", err)
	}

	return user.ToResponse(updated), nil
}

// Delete implements user.UserService. Applications and saved jobs cascade
// at the database level.
func (s *UserServiceImpl) Delete(ctx context.Context, userID string) error {
	if err := s.UserRepository.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
