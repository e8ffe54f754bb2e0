package postgresql

import (
	"context"
	"fmt"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `j.id, j.employer_id, j.company_id, j.title, j.description, j.category,
	   j.subcategory, j.location, j.salary_min, j.salary_max, j.status,
	   j.application_deadline, j.created_at, j.updated_at`

func scanJob(row interface{ Scan(dest ...any) error }, withCompany bool) (job.Job, error) {
	var j job.Job
	dest := []any{
		&j.ID,
		&j.EmployerID,
		&j.CompanyID,
		&j.Title,
		&j.Description,
		&j.Category,
		&j.Subcategory,
		&j.Location,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Status,
		&j.ApplicationDeadline,
		&j.CreatedAt,
		&j.UpdatedAt,
	}
	if withCompany {
		dest = append(dest, &j.CompanyName, &j.CompanyLogo)
	}
	err := row.Scan(dest...)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs AS j (employer_id, company_id, title, description, category, subcategory,
							   location, salary_min, salary_max, status, application_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + jobColumns

	return scanJob(q.QueryRow(ctx, query,
		newJob.EmployerID,
		newJob.CompanyID,
		newJob.Title,
		newJob.Description,
		newJob.Category,
		newJob.Subcategory,
		newJob.Location,
		newJob.SalaryMin,
		newJob.SalaryMax,
		newJob.Status,
		newJob.ApplicationDeadline,
	), false)
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	return scanJob(q.QueryRow(ctx, query, id), false)
}

// UpdateStatus implements job.JobRepository.
func (r *jobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// ListPublic implements job.JobRepository. Non-open jobs are excluded by
// the WHERE clause, never surfaced as errors.
func (r *jobRepositoryImpl) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `, c.name, c.logo_path
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'open'
	`
	args := []any{}
	idx := 1

	if filter.Category != "" {
		query += fmt.Sprintf(" AND j.category = $%d", idx)
		args = append(args, filter.Category)
		idx++
	}
	if filter.Subcategory != "" {
		query += fmt.Sprintf(" AND j.subcategory = $%d", idx)
		args = append(args, filter.Subcategory)
		idx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", idx)
		args = append(args, "%"+filter.Location+"%")
		idx++
	}
	if filter.SalaryMin != nil {
		query += fmt.Sprintf(" AND j.salary_max >= $%d", idx)
		args = append(args, *filter.SalaryMin)
		idx++
	}

	query += " ORDER BY j.created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" LIMIT $%d", idx)
	args = append(args, limit)
	idx++
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows, true)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ListByEmployer implements job.JobRepository.
func (r *jobRepositoryImpl) ListByEmployer(ctx context.Context, employerID string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		WHERE j.employer_id = $1
		ORDER BY j.created_at DESC
	`
	return r.queryJobs(ctx, q, query, employerID)
}

// ListByStatus implements job.JobRepository.
func (r *jobRepositoryImpl) ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		WHERE j.status = $1
		ORDER BY j.created_at DESC
	`
	return r.queryJobs(ctx, q, query, status)
}

func (r *jobRepositoryImpl) queryJobs(ctx context.Context, q database.Querier, query string, args ...any) ([]job.Job, error) {
	rows, err := q.Query(ctx, query, args...)
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

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}

// CloseExpired implements job.JobRepository. Invoked from the scheduler.
func (r *jobRepositoryImpl) CloseExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET status = 'closed', updated_at = NOW()
		WHERE status = 'open' AND application_deadline IS NOT NULL AND application_deadline < NOW()
	`
	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
