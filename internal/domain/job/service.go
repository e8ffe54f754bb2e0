package job

import (
	"context"
)

type JobService interface {
	// Create posts a job. Employers must hold an active account and an
	// approved company; when a posting fee is configured, a paid order is
	// consumed. Admin-created jobs skip the checks and go live immediately,
	// everything else starts in pending moderation.
	Create(ctx context.Context, actorID string, req CreateJobRequest) (JobResponse, error)
	Get(ctx context.Context, id string) (JobResponse, error)
	ListPublic(ctx context.Context, filter PublicFilter) ([]JobResponse, error)
	ListMine(ctx context.Context, employerID string) ([]JobResponse, error)
	// Close takes an open job off the board. Owner or admin only.
	Close(ctx context.Context, actorID string, jobID string) error
	Delete(ctx context.Context, actorID string, jobID string) error

	SaveJob(ctx context.Context, userID, jobID string) error
	UnsaveJob(ctx context.Context, userID, jobID string) error
	ListSaved(ctx context.Context, userID string) ([]JobResponse, error)
}
