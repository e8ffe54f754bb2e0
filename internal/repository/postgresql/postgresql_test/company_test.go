package postgresql_test

import (
	"context"
	"testing"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== COMPANY REPOSITORY TESTS =====

// Replacing a verification document sends an approved company back to the
// moderation queue.
func TestCompanyRepository_UpdateDocuments_ProofResetsStatus(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	companyRepo := postgresql.NewCompanyRepository(testDB)

	proofPath := "companies/new-proof.pdf"
	err := companyRepo.UpdateDocuments(ctx, companyID, company.UpdateDocumentsRequest{
		BusinessProofPath: &proofPath,
	})
	require.NoError(t, err)

	retrieved, err := companyRepo.GetByID(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, company.StatusPending, retrieved.Status)
	assert.Equal(t, proofPath, retrieved.BusinessProofPath)
}

// A logo swap is cosmetic and must not demote an approved company.
func TestCompanyRepository_UpdateDocuments_LogoOnlyKeepsStatus(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	employer := createTestUser(t, ctx, "employer@example.com", user.RoleEmployer)
	companyID := createTestCompany(t, ctx, employer.ID, company.StatusApproved)
	companyRepo := postgresql.NewCompanyRepository(testDB)

	logoPath := "companies/logo.png"
	err := companyRepo.UpdateDocuments(ctx, companyID, company.UpdateDocumentsRequest{
		LogoPath: &logoPath,
	})
	require.NoError(t, err)

	retrieved, err := companyRepo.GetByID(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, company.StatusApproved, retrieved.Status)
	require.NotNil(t, retrieved.LogoPath)
	assert.Equal(t, logoPath, *retrieved.LogoPath)
}
