package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDB *database.DB

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		// Tests skip via requireTestDB
		return
	}

	ctx := context.Background()
	if err := database.RunMigrations(ctx, dsn); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

// requireTestDB skips the test when TEST_DATABASE_URL is not set, so the
// suite stays runnable on machines without a local PostgreSQL.
func requireTestDB(t *testing.T) {
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set; skipping repository tests")
	}
}

var testTables = []string{
	"refresh_tokens",
	"payment_orders",
	"saved_jobs",
	"applications",
	"jobs",
	"companies",
	"users",
}

// setupTestData wipes every table before a test runs.
func setupTestData(t *testing.T) {
	truncateTables(t)
}

// cleanupTestData resets the database after a test.
func cleanupTestData(t *testing.T) {
	truncateTables(t)
}

func truncateTables(t *testing.T) {
	ctx := context.Background()
	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	for _, table := range testTables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}

	err = tx.Commit(ctx)
	require.NoError(t, err)
}

// createTestUser seeds an active user directly, bypassing the repository
// under test.
func createTestUser(t *testing.T, ctx context.Context, email string, role user.Role) user.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	var newUser user.User
	err := testDB.QueryRow(ctx, `
		INSERT INTO users (name, email, mobile, password_hash, role, account_status, profile_status, resume_status)
		VALUES ('Test User', $1, '9876543210', $2, $3, 'active', 'incomplete', 'pending')
		RETURNING id, name, email, mobile, password_hash, role, account_status,
				  profile_status, resume_status, resume_path, created_at, updated_at
	`, email, string(hashedPassword), role).Scan(
		&newUser.ID, &newUser.Name, &newUser.Email, &newUser.Mobile, &newUser.PasswordHash,
		&newUser.Role, &newUser.AccountStatus, &newUser.ProfileStatus, &newUser.ResumeStatus,
		&newUser.ResumePath, &newUser.CreatedAt, &newUser.UpdatedAt,
	)
	require.NoError(t, err)
	return newUser
}

// createTestCompany seeds a company owned by recruiterID.
func createTestCompany(t *testing.T, ctx context.Context, recruiterID string, status company.Status) string {
	var companyID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO companies (recruiter_id, name, business_proof_path, id_proof_path, status)
		VALUES ($1, 'Test Company', 'companies/proof.pdf', 'companies/id.pdf', $2)
		RETURNING id
	`, recruiterID, status).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

// createTestJob seeds an open job owned by employerID.
func createTestJob(t *testing.T, ctx context.Context, employerID, companyID string) string {
	var jobID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO jobs (employer_id, company_id, title, description, category, status, application_deadline)
		VALUES ($1, $2, 'Delivery Driver', 'Deliver parcels across the city', 'Driver', 'open', $3)
		RETURNING id
	`, employerID, companyID, time.Now().Add(72*time.Hour)).Scan(&jobID)
	require.NoError(t, err)
	return jobID
}
