package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/job"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== JOB REPOSITORY TESTS =====

func TestJobRepository_Create_Success(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobRepo := postgresql.NewJobRepository(testDB)

	subcategory := "Bike Delivery"
	location := "Mumbai"
	salaryMin := int64(15000)
	salaryMax := int64(22000)
	deadline := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)

	newJob := job.Job{
		EmployerID:          employer.ID,
		CompanyID:           &companyID,
		Title:               "Delivery Partner",
		Description:         "Pick up and deliver food orders",
		Category:            "Delivery",
		Subcategory:         &subcategory,
		Location:            &location,
		SalaryMin:           &salaryMin,
		SalaryMax:           &salaryMax,
		Status:              job.StatusPending,
		ApplicationDeadline: &deadline,
	}

	created, err := jobRepo.Create(ctx, newJob)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, newJob.EmployerID, created.EmployerID)
	assert.Equal(t, newJob.Title, created.Title)
	assert.Equal(t, newJob.Category, created.Category)
	assert.Equal(t, job.StatusPending, created.Status)
	require.NotNil(t, created.CompanyID)
	assert.Equal(t, companyID, *created.CompanyID)
	require.NotNil(t, created.SalaryMin)
	assert.Equal(t, salaryMin, *created.SalaryMin)
	assert.False(t, created.CreatedAt.IsZero())

	// The row must be readable back by ID
	retrieved, err := jobRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, created.Title, retrieved.Title)
}

func TestJobRepository_Create_MinimalFields(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	admin := createTestUser(t, ctx, "admin@example.com", user.RoleAdmin)
	jobRepo := postgresql.NewJobRepository(testDB)

	// Admin postings carry no company and may omit every optional field
	created, err := jobRepo.Create(ctx, job.Job{
		EmployerID:  admin.ID,
		Title:       "Warehouse Helper",
		Description: "Load and unload trucks",
		Category:    "Warehouse",
		Status:      job.StatusOpen,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.CompanyID)
	assert.Nil(t, created.SalaryMin)
	assert.Equal(t, job.StatusOpen, created.Status)
}

func TestJobRepository_UpdateStatus_Success(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobID := createTestJob(t, ctx, employer.ID, companyID)
	jobRepo := postgresql.NewJobRepository(testDB)

	err := jobRepo.UpdateStatus(ctx, jobID, job.StatusClosed)
	require.NoError(t, err)

	retrieved, err := jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusClosed, retrieved.Status)
}
