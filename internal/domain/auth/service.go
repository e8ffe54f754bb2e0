package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) error
	ResendOTP(ctx context.Context, userID string) error
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
}
