package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateAccountStatus(ctx context.Context, id string, status AccountStatus) error
	// UpdateResume stores a new resume path and resets resume_status to
	// pending in the same statement, so re-review cannot be skipped.
	UpdateResume(ctx context.Context, id string, resumePath string) error
	UpdateResumeStatus(ctx context.Context, id string, status ResumeStatus) error
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) error
	ListByResumeStatus(ctx context.Context, status ResumeStatus) ([]User, error)
	Delete(ctx context.Context, id string) error
}
