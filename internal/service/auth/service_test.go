package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/jwt"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/otp"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = uuid.New().String()
	newUser.CreatedAt = time.Now()
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) UpdateAccountStatus(ctx context.Context, id string, status user.AccountStatus) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.AccountStatus = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateResume(ctx context.Context, id string, resumePath string) error {
	return nil
}

func (f *fakeUserRepo) UpdateResumeStatus(ctx context.Context, id string, status user.ResumeStatus) error {
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) error {
	return nil
}

func (f *fakeUserRepo) ListByResumeStatus(ctx context.Context, status user.ResumeStatus) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

// fakeOTPStore issues a fixed code and enforces a small attempt limit.
type fakeOTPStore struct {
	codes    map[string]string
	attempts map[string]int
}

func (f *fakeOTPStore) Issue(ctx context.Context, email string) (string, time.Duration, error) {
	f.codes[email] = "123456"
	f.attempts[email] = 0
	return "123456", 10 * time.Minute, nil
}

func (f *fakeOTPStore) Verify(ctx context.Context, email, code string) error {
	stored, ok := f.codes[email]
	if !ok {
		return otp.ErrCodeExpired
	}
	f.attempts[email]++
	if f.attempts[email] > 3 {
		delete(f.codes, email)
		return otp.ErrTooManyAttempts
	}
	if stored != code {
		return otp.ErrCodeMismatch
	}
	delete(f.codes, email)
	return nil
}

type fakeEmailService struct {
	sent []string
}

func (f *fakeEmailService) SendOTP(to, name, code string, expiresInMinutes int) error {
	f.sent = append(f.sent, to)
	return nil
}

type fakeJWTRepo struct{}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	return nil
}

func newTestService() (auth.AuthService, *fakeUserRepo, *fakeOTPStore, *fakeEmailService) {
	userRepo := &fakeUserRepo{users: map[string]user.User{}}
	otpStore := &fakeOTPStore{codes: map[string]string{}, attempts: map[string]int{}}
	emailSvc := &fakeEmailService{}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	svc := NewAuthService(nil, userRepo, jwtService, &fakeJWTRepo{}, otpStore, emailSvc)
	return svc, userRepo, otpStore, emailSvc
}

func registerReq(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:     "Ravi Kumar",
		Email:    email,
		Mobile:   "+919876543210",
		Password: "password123",
		Role:     string(user.RoleCandidate),
	}
}

func TestRegisterCreatesInactiveAccount(t *testing.T) {
	svc, userRepo, _, emailSvc := newTestService()

	resp, err := svc.Register(context.Background(), registerReq("ravi@example.com"))

	require.NoError(t, err)
	assert.True(t, resp.OTPSent)
	assert.Equal(t, []string{"ravi@example.com"}, emailSvc.sent)

	created := userRepo.users[resp.User.ID]
	assert.Equal(t, user.AccountInactive, created.AccountStatus)
	assert.Equal(t, user.ResumePending, created.ResumeStatus)
	assert.NotEqual(t, "password123", created.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("ravi@example.com"))
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestVerifyOTPActivatesAccount(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: resp.User.ID, OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, user.AccountActive, userRepo.users[resp.User.ID].AccountStatus)

	// A second verify on an active account is a no-op
	err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: resp.User.ID, OTP: "000000"})
	assert.NoError(t, err)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: resp.User.ID, OTP: "999999"})
	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	assert.Equal(t, user.AccountInactive, userRepo.users[resp.User.ID].AccountStatus)
}

func TestVerifyOTPTooManyAttempts(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: resp.User.ID, OTP: "999999"})
		assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	}

	err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: resp.User.ID, OTP: "999999"})
	assert.ErrorIs(t, err, auth.ErrTooManyOTPAttempts)
}

func TestVerifyOTPUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{UserID: uuid.New().String(), OTP: "123456"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestResendOTP(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	resp, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	err = svc.ResendOTP(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Len(t, emailSvc.sent, 2)
}

func TestLoginBeforeVerification(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerReq("ravi@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ravi@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrAccountNotVerified)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userRepo.users["u1"] = user.User{
		ID:            "u1",
		Email:         "ravi@example.com",
		PasswordHash:  string(hash),
		Role:          user.RoleCandidate,
		AccountStatus: user.AccountActive,
	}

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ravi@example.com",
		Password: "wrong-password",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginBlockedAccount(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userRepo.users["u1"] = user.User{
		ID:            "u1",
		Email:         "ravi@example.com",
		PasswordHash:  string(hash),
		Role:          user.RoleCandidate,
		AccountStatus: user.AccountBlocked,
	}

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ravi@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, user.ErrAccountBlocked)
}
