package postgresql

import (
	"context"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, recruiter_id, name, address, business_proof_path, id_proof_path,
	   logo_path, status, plan_expires_at, created_at, updated_at`

func scanCompany(row interface{ Scan(dest ...any) error }) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID,
		&c.RecruiterID,
		&c.Name,
		&c.Address,
		&c.BusinessProofPath,
		&c.IDProofPath,
		&c.LogoPath,
		&c.Status,
		&c.PlanExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository. The unique recruiter_id
// constraint enforces one company per recruiter.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (recruiter_id, name, address, business_proof_path, id_proof_path, logo_path, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns

	return scanCompany(q.QueryRow(ctx, query,
		newCompany.RecruiterID,
		newCompany.Name,
		newCompany.Address,
		newCompany.BusinessProofPath,
		newCompany.IDProofPath,
		newCompany.LogoPath,
		newCompany.Status,
	))
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(q.QueryRow(ctx, query, id))
}

// GetByRecruiterID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByRecruiterID(ctx context.Context, recruiterID string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE recruiter_id = $1`
	return scanCompany(q.QueryRow(ctx, query, recruiterID))
}

// ExistsByRecruiterID implements company.CompanyRepository.
func (r *companyRepositoryImpl) ExistsByRecruiterID(ctx context.Context, recruiterID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE recruiter_id = $1)`, recruiterID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateStatus implements company.CompanyRepository. Only the status column
// is touched; every other field belongs to the CRUD endpoints.
func (r *companyRepositoryImpl) UpdateStatus(ctx context.Context, id string, status company.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// UpdateDocuments implements company.CompanyRepository. Replacing a proof
// document sends the company back through moderation; a logo change alone
// does not touch the status.
func (r *companyRepositoryImpl) UpdateDocuments(ctx context.Context, id string, req company.UpdateDocumentsRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET business_proof_path = COALESCE($1, business_proof_path),
			id_proof_path = COALESCE($2, id_proof_path),
			logo_path = COALESCE($3, logo_path),
			status = CASE WHEN $1 IS NOT NULL OR $2 IS NOT NULL THEN 'pending' ELSE status END,
			updated_at = NOW()
		WHERE id = $4
	`
	_, err := q.Exec(ctx, query, req.BusinessProofPath, req.IDProofPath, req.LogoPath, id)
	return err
}

// UpdatePlanExpiry implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdatePlanExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET plan_expires_at = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, expiresAt, id)
	return err
}

// ListByStatus implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListByStatus(ctx context.Context, status company.Status) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE status = $1
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Delete implements company.CompanyRepository. Jobs cascade at the
// database level.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
