package postgresql_test

import (
	"context"
	"testing"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/application"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== APPLICATION REPOSITORY TESTS =====

func TestApplicationRepository_Create_Success(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobID := createTestJob(t, ctx, employer.ID, companyID)
	candidate := createTestUser(t, ctx, "candidate@example.com", user.RoleCandidate)
	appRepo := postgresql.NewApplicationRepository(testDB)

	created, err := appRepo.Create(ctx, application.Application{
		JobID:       jobID,
		ApplicantID: candidate.ID,
		Status:      application.StatusApplied,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, jobID, created.JobID)
	assert.Equal(t, candidate.ID, created.ApplicantID)
	assert.Equal(t, application.StatusApplied, created.Status)
}

// A second application to the same job must fail on the unique constraint,
// not slip through a racy existence pre-check.
func TestApplicationRepository_Create_Duplicate(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobID := createTestJob(t, ctx, employer.ID, companyID)
	candidate := createTestUser(t, ctx, "candidate@example.com", user.RoleCandidate)
	appRepo := postgresql.NewApplicationRepository(testDB)

	first := application.Application{
		JobID:       jobID,
		ApplicantID: candidate.ID,
		Status:      application.StatusApplied,
	}

	_, err := appRepo.Create(ctx, first)
	require.NoError(t, err)

	_, err = appRepo.Create(ctx, first)
	assert.ErrorIs(t, err, application.ErrAlreadyApplied)
}

func TestApplicationRepository_UpdateStatus_Success(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobID := createTestJob(t, ctx, employer.ID, companyID)
	candidate := createTestUser(t, ctx, "candidate@example.com", user.RoleCandidate)
	appRepo := postgresql.NewApplicationRepository(testDB)

	created, err := appRepo.Create(ctx, application.Application{
		JobID:       jobID,
		ApplicantID: candidate.ID,
		Status:      application.StatusApplied,
	})
	require.NoError(t, err)

	err = appRepo.UpdateStatus(ctx, created.ID, application.StatusShortlisted)
	require.NoError(t, err)

	retrieved, err := appRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, retrieved.Status)
}

// ID-ordered listings must come back newest first, which holds because
// primary keys default to uuidv7() and so sort by creation time.
func TestApplicationRepository_ListByJob_NewestFirst(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	jobID := createTestJob(t, ctx, employer.ID, companyID)
	first := createTestUser(t, ctx, "first@example.com", user.RoleCandidate)
	second := createTestUser(t, ctx, "second@example.com", user.RoleCandidate)
	appRepo := postgresql.NewApplicationRepository(testDB)

	_, err := appRepo.Create(ctx, application.Application{
		JobID: jobID, ApplicantID: first.ID, Status: application.StatusApplied,
	})
	require.NoError(t, err)
	_, err = appRepo.Create(ctx, application.Application{
		JobID: jobID, ApplicantID: second.ID, Status: application.StatusApplied,
	})
	require.NoError(t, err)

	apps, err := appRepo.ListByJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, second.ID, apps[0].ApplicantID)
	assert.Equal(t, first.ID, apps[1].ApplicantID)
}
