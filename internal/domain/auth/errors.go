package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountNotVerified  = errors.New("account not verified")
	ErrInvalidOTP          = errors.New("invalid or expired otp")
	ErrTooManyOTPAttempts  = errors.New("too many otp attempts")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
)
