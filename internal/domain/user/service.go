package user

import (
	"context"
	"mime/multipart"
)

// UploadResumeRequest carries a resume file from a multipart form.
type UploadResumeRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	// UploadResume stores the file and resets the resume to pending review.
	UploadResume(ctx context.Context, userID string, req UploadResumeRequest) (UserResponse, error)
	Delete(ctx context.Context, userID string) error
}
