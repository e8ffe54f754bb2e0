package postgresql

import (
	"context"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type savedJobRepositoryImpl struct {
	db *database.DB
}

func NewSavedJobRepository(db *database.DB) job.SavedJobRepository {
	return &savedJobRepositoryImpl{db: db}
}

// Save implements job.SavedJobRepository. Saving twice is a no-op.
func (r *savedJobRepositoryImpl) Save(ctx context.Context, userID, jobID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, job_id) DO NOTHING
	`
	_, err := q.Exec(ctx, query, userID, jobID)
	return err
}

// Unsave implements job.SavedJobRepository.
func (r *savedJobRepositoryImpl) Unsave(ctx context.Context, userID, jobID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return err
}

// ListByUser implements job.SavedJobRepository. Bookmarks of jobs that
// have since left the open state are still listed with their status.
func (r *savedJobRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows, false)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
