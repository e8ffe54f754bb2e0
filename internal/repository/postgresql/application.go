package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

// Create implements application.ApplicationRepository. Two concurrent
// applies for the same (job, applicant) race to the unique constraint;
// the loser gets ErrAlreadyApplied instead of a duplicate row.
func (r *applicationRepositoryImpl) Create(ctx context.Context, newApplication application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (job_id, applicant_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, job_id, applicant_id, status, created_at, updated_at
	`

	var created application.Application
	err := q.QueryRow(ctx, query,
		newApplication.JobID,
		newApplication.ApplicantID,
		newApplication.Status,
	).Scan(
		&created.ID,
		&created.JobID,
		&created.ApplicantID,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.Application{}, application.ErrAlreadyApplied
		}
		return application.Application{}, err
	}

	return created, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, job_id, applicant_id, status, created_at, updated_at
		FROM applications
		WHERE id = $1
	`

	var found application.Application
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.JobID,
		&found.ApplicantID,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	return found, nil
}

// Exists implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status application.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// ListByJob implements application.ApplicationRepository. Newest first,
// joined with applicant identity for the employer view.
func (r *applicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			   u.name, u.resume_path
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.id DESC
	`
	rows, err := q.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		var a application.Application
		err := rows.Scan(
			&a.ID,
			&a.JobID,
			&a.ApplicantID,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.ApplicantName,
			&a.ResumePath,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByApplicant implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByApplicant(ctx context.Context, applicantID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			   j.title
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.id DESC
	`
	rows, err := q.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		var a application.Application
		err := rows.Scan(
			&a.ID,
			&a.JobID,
			&a.ApplicantID,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.JobTitle,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
