package job

import (
	"context"
)

type JobRepository interface {
	GetByID(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, newJob Job) (Job, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// ListPublic returns open jobs only, newest first.
	ListPublic(ctx context.Context, filter PublicFilter) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]Job, error)
	ListByStatus(ctx context.Context, status Status) ([]Job, error)
	Delete(ctx context.Context, id string) error
	CloseExpired(ctx context.Context) (int64, error)
}

type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID string) error
	Unsave(ctx context.Context, userID, jobID string) error
	ListByUser(ctx context.Context, userID string) ([]Job, error)
}
