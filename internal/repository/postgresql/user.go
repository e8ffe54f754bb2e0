package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, name, email, mobile, password_hash, role, account_status,
	   profile_status, resume_status, resume_path, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Mobile,
		&u.PasswordHash,
		&u.Role,
		&u.AccountStatus,
		&u.ProfileStatus,
		&u.ResumeStatus,
		&u.ResumePath,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository. Concurrent registrations with the
// same email race past the service-level existence check; the loser hits
// the unique constraint and gets ErrUserEmailExists.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, mobile, password_hash, role, account_status, profile_status, resume_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.Mobile,
		newUser.PasswordHash,
		newUser.Role,
		newUser.AccountStatus,
		newUser.ProfileStatus,
		newUser.ResumeStatus,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateAccountStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateAccountStatus(ctx context.Context, id string, status user.AccountStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET account_status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// UpdateResume implements user.UserRepository. The status reset to pending
// happens in the same statement as the path update.
func (r *userRepositoryImpl) UpdateResume(ctx context.Context, id string, resumePath string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET resume_path = $1, resume_status = 'pending', updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, resumePath, id)
	return err
}

// UpdateResumeStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateResumeStatus(ctx context.Context, id string, status user.ResumeStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET resume_status = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			mobile = COALESCE($2, mobile),
			profile_status = 'complete',
			updated_at = NOW()
		WHERE id = $3
	`
	_, err := q.Exec(ctx, query, req.Name, req.Mobile, id)
	return err
}

// ListByResumeStatus implements user.UserRepository.
func (r *userRepositoryImpl) ListByResumeStatus(ctx context.Context, status user.ResumeStatus) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = 'candidate' AND resume_status = $1 AND resume_path IS NOT NULL
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete implements user.UserRepository. Owned companies, jobs and
// applications cascade at the database level.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
