package postgresql_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.DefaultCost)

	created, err := userRepo.Create(ctx, user.User{
		Name:          "Ravi Kumar",
		Email:         "ravi@example.com",
		Mobile:        "9876543210",
		PasswordHash:  string(hashedPassword),
		Role:          user.RoleCandidate,
		AccountStatus: user.AccountInactive,
		ProfileStatus: user.ProfileIncomplete,
		ResumeStatus:  user.ResumePending,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ravi@example.com", created.Email)
	assert.Equal(t, user.RoleCandidate, created.Role)
	assert.Equal(t, user.AccountInactive, created.AccountStatus)
	assert.False(t, created.CreatedAt.IsZero())
}

// Two registrations racing past the service-level existence check must
// still resolve to ErrUserEmailExists for the loser.
func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	newUser := user.User{
		Name:          "Ravi Kumar",
		Email:         "ravi@example.com",
		Mobile:        "9876543210",
		PasswordHash:  "hashed",
		Role:          user.RoleCandidate,
		AccountStatus: user.AccountInactive,
		ProfileStatus: user.ProfileIncomplete,
		ResumeStatus:  user.ResumePending,
	}

	_, err := userRepo.Create(ctx, newUser)
	require.NoError(t, err)

	newUser.Name = "Other Ravi"
	_, err = userRepo.Create(ctx, newUser)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)
	setupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	// Not-found mapping to domain errors happens in the service layer
	_, err := userRepo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
