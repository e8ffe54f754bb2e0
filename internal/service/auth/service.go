package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/auth"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/email"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/jwt"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/otp"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
	otpStore otp.Store
	emailSvc email.EmailService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	otpStore otp.Store,
	emailSvc email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
		otpStore:       otpStore,
		emailSvc:       emailSvc,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest) (auth.RegisterResponse, error) {
	exists, err := a.UserRepository.ExistsByEmail(ctx, registerReq.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := a.hashPassword(registerReq.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:          registerReq.Name,
		Email:         registerReq.Email,
		Mobile:        registerReq.Mobile,
		PasswordHash:  passwordHash,
		Role:          user.Role(registerReq.Role),
		AccountStatus: user.AccountInactive,
		ProfileStatus: user.ProfileIncomplete,
		ResumeStatus:  user.ResumePending,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	otpSent := a.issueAndSendOTP(ctx, created)

	return auth.RegisterResponse{
		User:    user.ToResponse(created),
		OTPSent: otpSent,
	}, nil
}

// issueAndSendOTP generates a verification code and emails it. Registration
// is not rolled back when delivery fails; the client can request a resend.
func (a *AuthServiceImpl) issueAndSendOTP(ctx context.Context, u user.User) bool {
	code, ttl, err := a.otpStore.Issue(ctx, u.Email)
	if err != nil {
		slog.Error("Failed to issue OTP", "user_id", u.ID, "error", err)
		return false
	}

	if err := a.emailSvc.SendOTP(u.Email, u.Name, code, int(ttl.Minutes())); err != nil {
		slog.Error("Failed to send OTP email", "user_id", u.ID, "error", err)
		return false
	}

	return true
}

// VerifyOTP implements auth.AuthService.
func (a *AuthServiceImpl) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) error {
	userData, err := a.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if userData.AccountStatus == user.AccountBlocked {
		return user.ErrAccountBlocked
	}
	if userData.IsActive() {
		// Already verified, nothing to do
		return nil
	}

	if err := a.otpStore.Verify(ctx, userData.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, otp.ErrTooManyAttempts):
			return auth.ErrTooManyOTPAttempts
		case errors.Is(err, otp.ErrCodeExpired), errors.Is(err, otp.ErrCodeMismatch):
			return auth.ErrInvalidOTP
		default:
			return fmt.Errorf("failed to verify otp: %w", err)
		}
	}

	if err := a.UserRepository.UpdateAccountStatus(ctx, userData.ID, user.AccountActive); err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}

	return nil
}

// ResendOTP implements auth.AuthService.
func (a *AuthServiceImpl) ResendOTP(ctx context.Context, userID string) error {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if userData.AccountStatus == user.AccountBlocked {
		return user.ErrAccountBlocked
	}
	if userData.IsActive() {
		return nil
	}

	code, ttl, err := a.otpStore.Issue(ctx, userData.Email)
	if err != nil {
		return fmt.Errorf("failed to issue otp: %w", err)
	}

	if err := a.emailSvc.SendOTP(userData.Email, userData.Name, code, int(ttl.Minutes())); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	switch userData.AccountStatus {
	case user.AccountInactive:
		return auth.TokenResponse{}, auth.ErrAccountNotVerified
	case user.AccountBlocked:
		return auth.TokenResponse{}, user.ErrAccountBlocked
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = user.ToResponse(userData)
	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// RefreshToken implements auth.AuthService. The presented refresh token is
// rotated: revoked and replaced in one transaction.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry (pass raw token, not hash)
	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get user
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}
	if userData.AccountStatus == user.AccountBlocked {
		return auth.TokenResponse{}, user.ErrAccountBlocked
	}

	// 5. Rotate: revoke the old token, issue and persist a new pair
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = user.ToResponse(userData)
	return tokenResponse, nil
}
